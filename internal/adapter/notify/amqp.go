package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const noticesExchange = "waiter_notices"

type noticeMessage struct {
	Seq       uint64    `json:"seq"`
	WaiterID  uint64    `json:"waiter_id,omitempty"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster publishes notices to a fanout exchange so other waiter
// devices see them too. Publishing failures are logged and dropped.
type Broadcaster struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger *zap.Logger
}

func NewBroadcaster(url string, log *zap.Logger) (*Broadcaster, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		noticesExchange, // name
		"fanout",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare %s exchange: %w", noticesExchange, err)
	}

	return &Broadcaster{conn: conn, ch: ch, logger: log}, nil
}

func (b *Broadcaster) Notify(ctx context.Context, notice domain.Notice) {
	body, err := json.Marshal(noticeMessage{
		Seq:       notice.Seq,
		WaiterID:  notice.WaiterID,
		Level:     string(notice.Level),
		Message:   notice.Message,
		Timestamp: notice.At.UTC(),
	})
	if err != nil {
		b.logger.Error("encode notice", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	err = b.ch.PublishWithContext(ctx,
		noticesExchange, // exchange
		"",              // routing key (ignored for fanout)
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		})
	if err != nil {
		b.logger.Error("publish notice", zap.Uint64("seq", notice.Seq), zap.Error(err))
	}
}

func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ch != nil {
		_ = b.ch.Close()
	}
	return b.conn.Close()
}
