package http

import (
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Handler
	notices port.NoticeReader
}

func NewNotificationHandler(notices port.NoticeReader, logger *zap.Logger) (*NotificationHandler, error) {
	return &NotificationHandler{
		Handler: *NewHandler(logger),
		notices: notices,
	}, nil
}

type noticeQuery struct {
	After uint64 `form:"after"`
}

type noticeResponse struct {
	Seq     uint64    `json:"seq"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ListNotifications returns the buffered notices newer than ?after=<seq> that
// are broadcast or addressed to the calling waiter.
func (nh *NotificationHandler) ListNotifications(ctx *gin.Context) {
	query := noticeQuery{}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		nh.handleValidationError(ctx, err)
		return
	}

	list := nh.notices.NoticesAfter(query.After, getAuthPayload(ctx).WaiterID)
	result := make([]noticeResponse, 0, len(list))
	for _, n := range list {
		result = append(result, noticeResponse{
			Seq:     n.Seq,
			Level:   string(n.Level),
			Message: n.Message,
			At:      n.At,
		})
	}

	nh.handleSuccess(ctx, result)
}
