package usecase

import (
	"context"

	"github.com/DRSN-tech/products-backend/internal/domain"
)

// ProductRepository — хранилище товаров. Каждый вызов сам берёт соединение и освобождает его до возврата.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, fields *domain.ProductFields) (*domain.Product, error)
	Update(ctx context.Context, id int64, fields *domain.ProductFields) error
	Delete(ctx context.Context, id int64) error
}

// CacheRepository описывает версионируемый кэш списка товаров.
// GetList возвращает nil без ошибки при промахе.
type CacheRepository interface {
	Version(ctx context.Context) (int64, error)
	GetList(ctx context.Context, version int64) ([]domain.Product, error)
	SetList(ctx context.Context, version int64, products []domain.Product) error
	Bump(ctx context.Context) error
}
