package usecase

import (
	"time"

	"github.com/DRSN-tech/products-backend/internal/domain"
)

// PRODUCT USECASE

// CreateProductReq содержит поля нового товара. Значения по умолчанию уже подставлены.
type CreateProductReq struct {
	Fields domain.ProductFields
}

// CreateProductRes возвращает идентификатор и время создания, назначенные хранилищем.
type CreateProductRes struct {
	ID        int64
	CreatedAt string
}

// UpdateProductReq задаёт полную перезапись изменяемых полей товара с указанным ID.
type UpdateProductReq struct {
	ID     int64
	Fields domain.ProductFields
}

// DeleteProductReq задаёт удаление товара по ID.
type DeleteProductReq struct {
	ID int64
}

// EVENTS

type ProductEventType string

const (
	ProductCreated ProductEventType = "product.created"
	ProductUpdated ProductEventType = "product.updated"
	ProductDeleted ProductEventType = "product.deleted"
)

// ProductChangeEvent описывает событие об изменении товара, уходящее в брокер после коммита.
type ProductChangeEvent struct {
	EventType  ProductEventType
	ProductID  int64
	OccurredAt time.Time
	Product    *domain.Product // nil для удаления
}

// MAPPERS

func NewCreateProductReq(fields domain.ProductFields) *CreateProductReq {
	return &CreateProductReq{Fields: fields}
}

func NewCreateProductRes(id int64, createdAt string) *CreateProductRes {
	return &CreateProductRes{ID: id, CreatedAt: createdAt}
}

func NewUpdateProductReq(id int64, fields domain.ProductFields) *UpdateProductReq {
	return &UpdateProductReq{ID: id, Fields: fields}
}

func NewDeleteProductReq(id int64) *DeleteProductReq {
	return &DeleteProductReq{ID: id}
}

func NewProductChangeEvent(eventType ProductEventType, productID int64, product *domain.Product) *ProductChangeEvent {
	return &ProductChangeEvent{
		EventType:  eventType,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
		Product:    product,
	}
}
