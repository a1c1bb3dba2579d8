package http

import (
	"strings"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const waiterPayloadKey = "waiter_payload"
const requestIDHeader = "X-Request-ID"

func authCheck(h *Handler, tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		payload, err := tokenService.VerifyToken(words[1])
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(waiterPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(waiterPayloadKey).(*port.TokenPayload)
}

func currentWaiter(ctx *gin.Context) *domain.Waiter {
	p := getAuthPayload(ctx)
	return &domain.Waiter{ID: p.WaiterID, Name: p.WaiterName}
}

// requestLogger tags every request with an id and logs it once finished.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(requestIDHeader, id)

		ctx.Next()

		log.Debug("request",
			zap.String("id", id),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()))
	}
}
