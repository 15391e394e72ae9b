package domain

import "github.com/shopspring/decimal"

// DefaultQuantity задаёт количество, которое подставляется, если оно не передано или равно нулю.
const DefaultQuantity int64 = 1

// Product описывает товар складского учёта
type Product struct {
	ID            int64
	Photo         *string // ссылка или data URL, хранится как есть
	Hint          string  // подсказка, где найти товар
	SKU           string
	SellingPrice  decimal.NullDecimal
	PurchasePrice decimal.NullDecimal
	Quantity      int64
	CreatedAt     string // текстовое представление created_at из PostgreSQL
}

// ProductFields — изменяемые поля товара. Используется и при создании, и при полной перезаписи.
type ProductFields struct {
	Photo         *string
	Hint          string
	SKU           string
	SellingPrice  decimal.NullDecimal
	PurchasePrice decimal.NullDecimal
	Quantity      int64
}

func NewProductFields(photo *string, hint, sku string, selling, purchase decimal.NullDecimal, quantity int64) *ProductFields {
	return &ProductFields{
		Photo:         photo,
		Hint:          hint,
		SKU:           sku,
		SellingPrice:  selling,
		PurchasePrice: purchase,
		Quantity:      quantity,
	}
}

// Margin возвращает наценку (цена продажи минус цена закупки), если обе цены заданы.
func (p *Product) Margin() (decimal.Decimal, bool) {
	if !p.SellingPrice.Valid || !p.PurchasePrice.Valid {
		return decimal.Zero, false
	}

	return p.SellingPrice.Decimal.Sub(p.PurchasePrice.Decimal), true
}

// MarginPercent возвращает наценку в процентах от цены закупки, округлённую до десятых.
// Для нулевой цены закупки процент не определён.
func (p *Product) MarginPercent() (decimal.Decimal, bool) {
	margin, ok := p.Margin()
	if !ok || p.PurchasePrice.Decimal.IsZero() {
		return decimal.Zero, false
	}

	return margin.Div(p.PurchasePrice.Decimal).Mul(decimal.NewFromInt(100)).Round(1), true
}
