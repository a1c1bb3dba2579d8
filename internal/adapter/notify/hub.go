package notify

import (
	"context"
	"sync"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"go.uber.org/zap"
)

// Hub numbers notices, logs them, keeps the latest ones for polling clients
// and forwards them to any attached broadcasters.
type Hub struct {
	mu      sync.Mutex
	seq     uint64
	buf     []domain.Notice
	size    int
	next    int
	forward []port.Notifier
	logger  *zap.Logger
}

func NewHub(size int, log *zap.Logger, forward ...port.Notifier) *Hub {
	if size < 1 {
		size = 1
	}
	return &Hub{
		buf:     make([]domain.Notice, 0, size),
		size:    size,
		forward: forward,
		logger:  log,
	}
}

func (h *Hub) Notify(ctx context.Context, notice domain.Notice) {
	h.mu.Lock()
	h.seq++
	notice.Seq = h.seq
	if len(h.buf) < h.size {
		h.buf = append(h.buf, notice)
	} else {
		h.buf[h.next] = notice
	}
	h.next = (h.next + 1) % h.size
	h.mu.Unlock()

	if notice.Level == domain.NoticeError {
		h.logger.Warn(notice.Message, zap.Uint64("seq", notice.Seq), zap.Uint64("waiter", notice.WaiterID))
	} else {
		h.logger.Info(notice.Message, zap.Uint64("seq", notice.Seq), zap.Uint64("waiter", notice.WaiterID))
	}

	for _, f := range h.forward {
		f.Notify(ctx, notice)
	}
}

// NoticesAfter returns buffered notices with Seq > seq that are broadcast or
// addressed to waiterID, oldest first.
func (h *Hub) NoticesAfter(seq uint64, waiterID uint64) []domain.Notice {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.Notice, 0)
	start := 0
	if len(h.buf) == h.size {
		start = h.next
	}
	for i := 0; i < len(h.buf); i++ {
		n := h.buf[(start+i)%len(h.buf)]
		if n.Seq > seq && n.VisibleTo(waiterID) {
			out = append(out, n)
		}
	}
	return out
}
