package converter

import "github.com/DRSN-tech/products-backend/internal/domain"

type ProductConverter interface {
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
	ToArrEntity(models []ProductRedisModel) []domain.Product
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(entities))
	for _, p := range entities {
		result = append(result, ProductRedisModel{
			ID:            p.ID,
			Photo:         p.Photo,
			Hint:          p.Hint,
			SKU:           p.SKU,
			SellingPrice:  p.SellingPrice,
			PurchasePrice: p.PurchasePrice,
			Quantity:      p.Quantity,
			CreatedAt:     p.CreatedAt,
		})
	}

	return result
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductRedisModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for _, m := range models {
		result = append(result, domain.Product{
			ID:            m.ID,
			Photo:         m.Photo,
			Hint:          m.Hint,
			SKU:           m.SKU,
			SellingPrice:  m.SellingPrice,
			PurchasePrice: m.PurchasePrice,
			Quantity:      m.Quantity,
			CreatedAt:     m.CreatedAt,
		})
	}

	return result
}
