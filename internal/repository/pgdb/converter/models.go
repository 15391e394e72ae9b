package converter

import "github.com/shopspring/decimal"

// ProductModel представляет запись таблицы products в PostgreSQL.
// created_at читается как текст (created_at::text) и наружу отдаётся без преобразований.
type ProductModel struct {
	ID            int64               `db:"id"`
	Photo         *string             `db:"photo"`
	Hint          *string             `db:"hint"`
	SKU           *string             `db:"sku"`
	SellingPrice  decimal.NullDecimal `db:"selling_price"`
	PurchasePrice decimal.NullDecimal `db:"purchase_price"`
	Quantity      *int64              `db:"quantity"`
	CreatedAt     string              `db:"created_at"`
}
