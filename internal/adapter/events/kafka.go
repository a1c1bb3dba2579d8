package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const eventTransactionFinalized = "transaction.finalized"

const writeBatchTimeout = 10 * time.Millisecond

type transactionEvent struct {
	Event               string          `json:"event"`
	TransactionID       string          `json:"transaction_id"`
	OrderID             string          `json:"order_id"`
	WaiterID            uint64          `json:"waiter_id"`
	FoodName            string          `json:"food_name"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhoneNumber string          `json:"customer_phone_number"`
	CreatedAt           time.Time       `json:"created_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher streams finalized transactions to a Kafka topic keyed by
// order id.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	// one event per finalized transaction; do not wait for a batch to fill
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.CRC32Balancer{},
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           writeBatchTimeout,
	}
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("no kafka topic configured")
	}
	return &KafkaPublisher{writer: NewKafkaWriter(brokers, topic), logger: log}, nil
}

func encodeTransaction(trx *domain.Transaction) (kafka.Message, error) {
	body, err := json.Marshal(transactionEvent{
		Event:               eventTransactionFinalized,
		TransactionID:       trx.ID,
		OrderID:             string(trx.OrderID),
		WaiterID:            trx.WaiterID,
		FoodName:            trx.FoodName,
		UnitPrice:           trx.UnitPrice,
		Quantity:            trx.Quantity,
		TotalPrice:          trx.TotalPrice,
		CustomerName:        trx.CustomerName,
		CustomerPhoneNumber: trx.CustomerPhoneNumber,
		CreatedAt:           trx.CreatedAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode transaction event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(trx.OrderID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(eventTransactionFinalized)},
		},
	}, nil
}

func (p *KafkaPublisher) PublishTransactionFinalized(ctx context.Context, trx *domain.Transaction) error {
	msg, err := encodeTransaction(trx)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write transaction event: %w", err)
	}
	p.logger.Debug("transaction event published", zap.String("order_id", string(trx.OrderID)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishTransactionFinalized(context.Context, *domain.Transaction) error {
	return nil
}
