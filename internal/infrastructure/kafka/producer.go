package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/internal/usecase"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события об изменении товаров в Kafka.
type Producer struct {
	writer messageWriter
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// ProductChangePayload описывает JSON события в топике.
type ProductChangePayload struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	ProductID  string          `json:"productId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Product    *ProductPayload `json:"product,omitempty"`
}

type ProductPayload struct {
	Photo         *string  `json:"photo"`
	Hint          string   `json:"hint"`
	SKU           string   `json:"sku"`
	SellingPrice  *float64 `json:"sellingPrice"`
	PurchasePrice *float64 `json:"purchasePrice"`
	Quantity      int64    `json:"quantity"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// PublishProductChange пишет событие в топик; ключом сообщения служит ID товара,
// поэтому события одного товара попадают в одну партицию по порядку.
func (p *Producer) PublishProductChange(ctx context.Context, event *usecase.ProductChangeEvent) error {
	msg, err := NewMessage(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("published %s for product %d", event.EventType, event.ProductID)
	return nil
}

// NewMessage собирает сообщение Kafka из события.
func NewMessage(event *usecase.ProductChangeEvent) (kafka.Message, error) {
	key := strconv.FormatInt(event.ProductID, 10)

	payload := ProductChangePayload{
		EventID:    uuid.NewString(),
		EventType:  string(event.EventType),
		ProductID:  key,
		OccurredAt: event.OccurredAt,
		Product:    toProductPayload(event.Product),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.EventType)},
		},
	}, nil
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		p.logger.Infof("kafka topic %s created", p.cfg.Topic)
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func toProductPayload(product *domain.Product) *ProductPayload {
	if product == nil {
		return nil
	}

	return &ProductPayload{
		Photo:         product.Photo,
		Hint:          product.Hint,
		SKU:           product.SKU,
		SellingPrice:  priceValue(product.SellingPrice),
		PurchasePrice: priceValue(product.PurchasePrice),
		Quantity:      product.Quantity,
		CreatedAt:     product.CreatedAt,
	}
}

func priceValue(price decimal.NullDecimal) *float64 {
	if !price.Valid {
		return nil
	}

	v := price.Decimal.InexactFloat64()
	return &v
}
