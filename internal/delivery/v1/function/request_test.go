package function

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductBodyDefaults(t *testing.T) {
	for _, body := range []string{"", "  ", "null", "{}", `{"hint":null,"sku":null,"quantity":null}`} {
		pb, err := decodeProductBody(body)
		require.NoError(t, err, body)

		f, err := pb.fields()
		require.NoError(t, err, body)
		assert.Equal(t, "", f.Hint, body)
		assert.Equal(t, "", f.SKU, body)
		assert.Nil(t, f.Photo, body)
		assert.False(t, f.SellingPrice.Valid, body)
		assert.Equal(t, int64(1), f.Quantity, body)
	}
}

func TestDecodeProductBodyCoercion(t *testing.T) {
	pb, err := decodeProductBody(`{"id":"42","sellingPrice":"19.99","purchasePrice":12,"quantity":"3"}`)
	require.NoError(t, err)

	id, err := parseID(pb.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	f, err := pb.fields()
	require.NoError(t, err)
	assert.True(t, f.SellingPrice.Decimal.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, f.PurchasePrice.Decimal.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, int64(3), f.Quantity)
}

func TestDecodeProductBodyRejectsTrailingData(t *testing.T) {
	for _, body := range []string{`{"hint":"a"} {"hint":"b"}`, `{}}`, `{}]`, `{} 1`} {
		_, err := decodeProductBody(body)
		assert.ErrorIs(t, err, e.ErrInvalidBody, body)
	}

	_, err := decodeProductBody("{}\n  ")
	assert.NoError(t, err)
}

func TestParseID(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want int64
		err  error
	}{
		{"missing", nil, 0, e.ErrIDRequired},
		{"empty string", "", 0, e.ErrIDRequired},
		{"blank string", "   ", 0, e.ErrIDRequired},
		{"digits", "17", 17, nil},
		{"leading zeros", "010", 10, nil},
		{"surrounding spaces", " 5 ", 5, nil},
		{"plus sign", "+7", 7, nil},
		{"minus sign", "-3", -3, nil},
		{"hex string", "0x10", 0, e.ErrInvalidID},
		{"underscores", "1_000", 0, e.ErrInvalidID},
		{"trailing letters", "12abc", 0, e.ErrInvalidID},
		{"fractional string", "1.5", 0, e.ErrInvalidID},
		{"json integer", json.Number("42"), 42, nil},
		{"json exponent", json.Number("1e2"), 100, nil},
		{"json fraction truncated", json.Number("7.9"), 7, nil},
		{"json negative fraction truncated", json.Number("-7.9"), -7, nil},
		{"json out of range", json.Number("1e30"), 0, e.ErrInvalidID},
		{"json object", map[string]any{"id": 1}, 0, e.ErrInvalidID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := parseID(tc.raw)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestQueryID(t *testing.T) {
	_, err := queryID(map[string]string{})
	assert.ErrorIs(t, err, e.ErrIDRequired)

	_, err = queryID(nil)
	assert.ErrorIs(t, err, e.ErrIDRequired)

	id, err := queryID(map[string]string{"id": "010"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)

	_, err = queryID(map[string]string{"id": "0x10"})
	assert.ErrorIs(t, err, e.ErrInvalidID)
}

func TestQuantityCoercion(t *testing.T) {
	cases := []struct {
		body string
		want int64
		ok   bool
	}{
		{`{"quantity":3}`, 3, true},
		{`{"quantity":"3"}`, 3, true},
		{`{"quantity":"010"}`, 10, true},
		{`{"quantity":3.0}`, 3, true},
		{`{"quantity":1e2}`, 100, true},
		{`{"quantity":true}`, 1, true},
		{`{"quantity":1.5}`, 0, false},
		{`{"quantity":"1.5"}`, 0, false},
		{`{"quantity":"0x10"}`, 0, false},
		{`{"quantity":[1]}`, 0, false},
	}

	for _, tc := range cases {
		pb, err := decodeProductBody(tc.body)
		require.NoError(t, err, tc.body)

		f, err := pb.fields()
		if !tc.ok {
			assert.ErrorIs(t, err, e.ErrInvalidBody, tc.body)
			continue
		}
		require.NoError(t, err, tc.body)
		assert.Equal(t, tc.want, f.Quantity, tc.body)
	}
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodOptions, ParseMethod("OPTIONS"))
	assert.Equal(t, MethodGet, ParseMethod(""))
	assert.Equal(t, MethodDelete, ParseMethod("DELETE"))
	assert.Equal(t, MethodUnsupported, ParseMethod("PATCH"))
	assert.Equal(t, "PUT", MethodPut.String())
}
