package http

import (
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/MikeRez0/waiterdesk/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WaiterHandler struct {
	Handler
	service port.Service
}

type registerRequest struct {
	Login    string `json:"login" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func NewWaiterHandler(service port.Service, logger *zap.Logger) (*WaiterHandler, error) {
	return &WaiterHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// RegisterWaiter creates the account and answers like LoginWaiter.
func (wh *WaiterHandler) RegisterWaiter(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		wh.handleError(ctx, domain.ErrInternal)
		return
	}

	name := req.Name
	if name == "" {
		name = req.Login
	}

	_, err = wh.service.RegisterWaiter(ctx, &domain.Waiter{
		Login:    req.Login,
		Name:     name,
		Password: hashed,
	})
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.LoginWaiter(ctx)
}

func (wh *WaiterHandler) LoginWaiter(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	token, err := wh.service.LoginWaiter(ctx, req.Login, req.Password)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	ctx.Header(authHeaderKey, authType+" "+token)
	wh.handleSuccess(ctx, tokenResponse{Token: token})
}
