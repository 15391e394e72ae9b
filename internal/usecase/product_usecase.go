package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
)

const (
	cacheTimeout   = 500 * time.Millisecond
	publishTimeout = 5 * time.Second
)

// ProductUseCase реализует CRUD над товарами. Кэш и продюсер необязательны (могут быть nil).
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	producer    MessageProducer
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	producer MessageProducer,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		producer:    producer,
		logger:      logger,
	}
}

// ListProducts возвращает все товары, новые первыми. Сначала смотрит в кэш текущей версии.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	version, cached := p.cachedList(ctx)
	if cached != nil {
		return cached, nil
	}

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if version > 0 {
		p.storeList(ctx, version, products)
	}

	return products, nil
}

// CreateProduct создаёт товар; id и created_at назначает хранилище.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error) {
	const op = "ProductUseCase.CreateProduct"

	product, err := p.productRepo.Create(ctx, &req.Fields)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.afterMutation(ctx, NewProductChangeEvent(ProductCreated, product.ID, product))

	return NewCreateProductRes(product.ID, product.CreatedAt), nil
}

// UpdateProduct перезаписывает все изменяемые поля. Отсутствие строки с таким ID ошибкой не считается.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) error {
	const op = "ProductUseCase.UpdateProduct"

	if err := p.productRepo.Update(ctx, req.ID, &req.Fields); err != nil {
		return e.Wrap(op, err)
	}

	product := &domain.Product{
		ID:            req.ID,
		Photo:         req.Fields.Photo,
		Hint:          req.Fields.Hint,
		SKU:           req.Fields.SKU,
		SellingPrice:  req.Fields.SellingPrice,
		PurchasePrice: req.Fields.PurchasePrice,
		Quantity:      req.Fields.Quantity,
	}
	p.afterMutation(ctx, NewProductChangeEvent(ProductUpdated, req.ID, product))

	return nil
}

// DeleteProduct удаляет товар по ID. Отсутствие строки ошибкой не считается.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, req *DeleteProductReq) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, req.ID); err != nil {
		return e.Wrap(op, err)
	}

	p.afterMutation(ctx, NewProductChangeEvent(ProductDeleted, req.ID, nil))

	return nil
}

// cachedList возвращает текущую версию кэша и список, если он там есть.
// Нулевая версия означает, что кэш выключен или недоступен.
func (p *ProductUseCase) cachedList(ctx context.Context) (int64, []domain.Product) {
	const op = "ProductUseCase.cachedList"

	if p.cacheRepo == nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	version, err := p.cacheRepo.Version(ctx)
	if err != nil {
		p.logger.Warnf("Failed to read cache version: %v", e.Wrap(op, err))
		return 0, nil
	}

	products, err := p.cacheRepo.GetList(ctx, version)
	if err != nil {
		p.logger.Warnf("Failed to read cached products: %v", e.Wrap(op, err))
		return version, nil
	}

	return version, products
}

func (p *ProductUseCase) storeList(ctx context.Context, version int64, products []domain.Product) {
	const op = "ProductUseCase.storeList"

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheTimeout)
	defer cancel()

	if err := p.cacheRepo.SetList(ctx, version, products); err != nil {
		p.logger.Warnf("Failed to cache products: %v", e.Wrap(op, err))
	}
}

// afterMutation сбрасывает кэш списка и публикует событие. Ошибки только логируются:
// изменение в базе уже закоммичено.
func (p *ProductUseCase) afterMutation(ctx context.Context, event *ProductChangeEvent) {
	const op = "ProductUseCase.afterMutation"

	ctx = context.WithoutCancel(ctx)

	if p.cacheRepo != nil {
		cacheCtx, cancel := context.WithTimeout(ctx, cacheTimeout)
		if err := p.cacheRepo.Bump(cacheCtx); err != nil {
			p.logger.Warnf("Failed to invalidate products cache: %v", e.Wrap(op, err))
		}
		cancel()
	}

	if p.producer != nil {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		if err := p.producer.PublishProductChange(pubCtx, event); err != nil {
			p.logger.Warnf("Failed to publish %s for product %d: %v", event.EventType, event.ProductID, e.Wrap(op, err))
		}
		cancel()
	}
}
