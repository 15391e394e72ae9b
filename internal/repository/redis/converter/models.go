package converter

import "github.com/shopspring/decimal"

// ProductRedisModel хранит товар в закэшированном списке.
type ProductRedisModel struct {
	ID            int64               `json:"id"`
	Photo         *string             `json:"photo,omitempty"`
	Hint          string              `json:"hint"`
	SKU           string              `json:"sku"`
	SellingPrice  decimal.NullDecimal `json:"selling_price"`
	PurchasePrice decimal.NullDecimal `json:"purchase_price"`
	Quantity      int64               `json:"quantity"`
	CreatedAt     string              `json:"created_at"`
}
