package usecase

import (
	"context"

	"github.com/DRSN-tech/products-backend/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) error
	DeleteProduct(ctx context.Context, req *DeleteProductReq) error
}
