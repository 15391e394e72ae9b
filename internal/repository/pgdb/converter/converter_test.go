package converter

import (
	"testing"

	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEntityFillsDefaults(t *testing.T) {
	conv := &ProductConverterImpl{}
	zero := int64(0)

	p := conv.ToEntity(&ProductModel{ID: 7, Quantity: &zero, CreatedAt: "2026-03-01 12:00:00+00"})
	require.NotNil(t, p)

	assert.Equal(t, int64(7), p.ID)
	assert.Nil(t, p.Photo)
	assert.Equal(t, "", p.Hint)
	assert.Equal(t, "", p.SKU)
	assert.Equal(t, domain.DefaultQuantity, p.Quantity)
	assert.False(t, p.SellingPrice.Valid)
	assert.Equal(t, "2026-03-01 12:00:00+00", p.CreatedAt)

	p = conv.ToEntity(&ProductModel{ID: 8})
	assert.Equal(t, domain.DefaultQuantity, p.Quantity)
}

func TestToModelKeepsAllFields(t *testing.T) {
	conv := &ProductConverterImpl{}
	photo := "https://cdn/pen.png"

	m := conv.ToModel(&domain.ProductFields{
		Photo:        &photo,
		Hint:         "Pen",
		SKU:          "PEN-1",
		SellingPrice: decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
		Quantity:     10,
	})

	require.NotNil(t, m.Hint)
	require.NotNil(t, m.Quantity)
	assert.Equal(t, &photo, m.Photo)
	assert.Equal(t, "Pen", *m.Hint)
	assert.Equal(t, "PEN-1", *m.SKU)
	assert.True(t, m.SellingPrice.Decimal.Equal(decimal.RequireFromString("2.5")))
	assert.False(t, m.PurchasePrice.Valid)
	assert.Equal(t, int64(10), *m.Quantity)
}

func TestToArrEntityEmpty(t *testing.T) {
	conv := &ProductConverterImpl{}

	out := conv.ToArrEntity(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
