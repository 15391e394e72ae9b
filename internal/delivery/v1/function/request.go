package function

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/spf13/cast"
)

// decodeProductBody разбирает тело POST/PUT. Пустое тело и JSON null равносильны {}.
func decodeProductBody(body string) (*productBody, error) {
	var pb productBody
	if strings.TrimSpace(body) == "" {
		return &pb, nil
	}

	dec := json.NewDecoder(bytes.NewBufferString(body))
	dec.UseNumber()

	if err := dec.Decode(&pb); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidBody, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", e.ErrInvalidBody)
	}

	return &pb, nil
}

// fields возвращает изменяемые поля товара с подставленными значениями по умолчанию.
// Отсутствующее поле и явный null ведут себя одинаково.
func (pb *productBody) fields() (*domain.ProductFields, error) {
	quantity := domain.DefaultQuantity
	if pb.Quantity != nil {
		q, err := toInt64(pb.Quantity, false)
		if err != nil {
			return nil, fmt.Errorf("%w: quantity must be an integer", e.ErrInvalidBody)
		}
		quantity = q
	}

	return domain.NewProductFields(
		pb.Photo,
		valueOrEmpty(pb.Hint),
		valueOrEmpty(pb.SKU),
		pb.SellingPrice,
		pb.PurchasePrice,
		quantity,
	), nil
}

// parseID приводит идентификатор из тела или строки запроса к целому числу.
func parseID(raw any) (int64, error) {
	if raw == nil {
		return 0, e.ErrIDRequired
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return 0, e.ErrIDRequired
	}

	id, err := toInt64(raw, true)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", e.ErrInvalidID, raw)
	}

	return id, nil
}

func queryID(params map[string]string) (int64, error) {
	raw, ok := params["id"]
	if !ok {
		return 0, e.ErrIDRequired
	}

	return parseID(raw)
}

// toInt64 приводит значение из JSON или строки запроса к целому.
// Строки разбираются только в десятичной записи, пробелы по краям отбрасываются.
// Дробное число отсекается до целого при truncate, иначе допустимо только целое значение.
func toInt64(v any, truncate bool) (int64, error) {
	switch x := v.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}

		f, err := x.Float64()
		if err != nil {
			return 0, err
		}
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, fmt.Errorf("%s is out of range", x)
		}
		if !truncate && f != math.Trunc(f) {
			return 0, fmt.Errorf("%s is not an integer", x)
		}

		return int64(f), nil
	default:
		return cast.ToInt64E(x)
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
