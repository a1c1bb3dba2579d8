package http

import (
	"net/http"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Handler
	service port.Service
}

func NewCatalogHandler(service port.Service, logger *zap.Logger) (*CatalogHandler, error) {
	return &CatalogHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// foodPrice may be a number or a string and is stored in that form.
type catalogRequest struct {
	FoodName  string       `json:"foodName"`
	FoodPrice domain.Price `json:"foodPrice"`
}

func (ch *CatalogHandler) AddFoodItem(ctx *gin.Context) {
	req := catalogRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	entry, err := ch.service.AddCatalogEntry(ctx, &domain.CatalogEntry{
		FoodName: req.FoodName,
		Price:    req.FoodPrice,
	})
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, entry, http.StatusCreated)
}
