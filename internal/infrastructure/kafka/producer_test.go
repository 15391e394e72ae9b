package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/internal/usecase"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *captureWriter) Close() error { return nil }

func newTestProducer(w messageWriter) *Producer {
	return &Producer{
		writer: w,
		logger: logger.NewSlogLoggerWithOptions(logger.Options{Output: io.Discard}),
		cfg:    &cfg.KafkaCfg{Topic: "products.changes"},
	}
}

func TestNewMessageForCreatedProduct(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := &usecase.ProductChangeEvent{
		EventType:  usecase.ProductCreated,
		ProductID:  42,
		OccurredAt: occurred,
		Product: &domain.Product{
			ID:           42,
			Hint:         "Pen",
			SKU:          "PEN-1",
			SellingPrice: decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
			Quantity:     10,
			CreatedAt:    "2026-03-01 12:00:00+00",
		},
	}

	msg, err := NewMessage(event)
	require.NoError(t, err)
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, occurred, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "product.created", string(msg.Headers[0].Value))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))

	_, err = uuid.Parse(raw["eventId"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "product.created", raw["eventType"])
	assert.Equal(t, "42", raw["productId"])

	product := raw["product"].(map[string]any)
	assert.Equal(t, 2.5, product["sellingPrice"])
	assert.Nil(t, product["purchasePrice"])
	assert.Nil(t, product["photo"])
	assert.Equal(t, float64(10), product["quantity"])
}

func TestNewMessageForDeletedProductHasNoBody(t *testing.T) {
	msg, err := NewMessage(usecase.NewProductChangeEvent(usecase.ProductDeleted, 5, nil))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))
	assert.NotContains(t, raw, "product")
	assert.Equal(t, "product.deleted", raw["eventType"])
}

func TestPublishProductChange(t *testing.T) {
	w := &captureWriter{}
	p := newTestProducer(w)

	err := p.PublishProductChange(context.Background(), usecase.NewProductChangeEvent(usecase.ProductDeleted, 9, nil))
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "9", string(w.msgs[0].Key))
}

func TestPublishProductChangeWrapsWriterError(t *testing.T) {
	brokerErr := errors.New("leader not available")
	p := newTestProducer(&captureWriter{err: brokerErr})

	err := p.PublishProductChange(context.Background(), usecase.NewProductChangeEvent(usecase.ProductUpdated, 1, &domain.Product{ID: 1}))
	assert.ErrorIs(t, err, brokerErr)
}
