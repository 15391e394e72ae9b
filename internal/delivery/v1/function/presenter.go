package function

import (
	"strconv"

	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// toProductViews готовит список к выдаче. Пустой список сериализуется как [].
func toProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, toProductView(&products[i]))
	}

	return views
}

// toProductView: нулевая цена выдаётся как null, нулевое количество как 1.
// Наценка добавляется, только если обе цены выданы числами.
func toProductView(p *domain.Product) ProductView {
	quantity := p.Quantity
	if quantity == 0 {
		quantity = domain.DefaultQuantity
	}

	view := ProductView{
		ID:            strconv.FormatInt(p.ID, 10),
		Photo:         p.Photo,
		Hint:          p.Hint,
		SKU:           p.SKU,
		SellingPrice:  priceValue(p.SellingPrice),
		PurchasePrice: priceValue(p.PurchasePrice),
		Quantity:      quantity,
		CreatedAt:     p.CreatedAt,
	}

	if view.SellingPrice != nil && view.PurchasePrice != nil {
		if margin, ok := p.Margin(); ok {
			view.Margin = floatPtr(margin)
		}
		if pct, ok := p.MarginPercent(); ok {
			view.MarginPercent = floatPtr(pct)
		}
	}

	return view
}

func priceValue(price decimal.NullDecimal) *float64 {
	if !price.Valid || price.Decimal.IsZero() {
		return nil
	}

	return floatPtr(price.Decimal)
}

func floatPtr(d decimal.Decimal) *float64 {
	v := d.InexactFloat64()
	return &v
}
