package usecase

import "context"

// MessageProducer публикует события об изменении товаров.
type MessageProducer interface {
	PublishProductChange(ctx context.Context, event *ProductChangeEvent) error
}
