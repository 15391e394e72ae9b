package converter

import "github.com/DRSN-tech/products-backend/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(fields *domain.ProductFields) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToModel(fields *domain.ProductFields) *ProductModel {
	if fields == nil {
		return nil
	}

	quantity := fields.Quantity
	return &ProductModel{
		Photo:         fields.Photo,
		Hint:          ptr(fields.Hint),
		SKU:           ptr(fields.SKU),
		SellingPrice:  fields.SellingPrice,
		PurchasePrice: fields.PurchasePrice,
		Quantity:      &quantity,
	}
}

// ToEntity переводит строку таблицы в товар. NULL в текстовых полях становится пустой строкой,
// NULL или 0 в количестве становится единицей.
func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	quantity := domain.DefaultQuantity
	if model.Quantity != nil && *model.Quantity != 0 {
		quantity = *model.Quantity
	}

	return &domain.Product{
		ID:            model.ID,
		Photo:         model.Photo,
		Hint:          deref(model.Hint),
		SKU:           deref(model.SKU),
		SellingPrice:  model.SellingPrice,
		PurchasePrice: model.PurchasePrice,
		Quantity:      quantity,
		CreatedAt:     model.CreatedAt,
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *c.ToEntity(&models[i]))
	}

	return result
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
