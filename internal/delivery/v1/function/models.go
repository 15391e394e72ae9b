package function

import "github.com/shopspring/decimal"

// Request описывает входящее событие: метод, необязательное тело и параметры строки запроса.
// Форма совпадает с прокси-событием API Gateway, поэтому его можно разбирать напрямую.
type Request struct {
	HTTPMethod            string            `json:"httpMethod"`
	Body                  string            `json:"body"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
}

// Response описывает ответ в форме HTTP: код, заголовки и тело (JSON или пустая строка).
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type Method int

const (
	MethodUnsupported Method = iota
	MethodOptions
	MethodGet
	MethodPost
	MethodPut
	MethodDelete
)

// ParseMethod сопоставляет строку метода с Method. Пустой метод считается GET.
func ParseMethod(s string) Method {
	switch s {
	case "OPTIONS":
		return MethodOptions
	case "GET", "":
		return MethodGet
	case "POST":
		return MethodPost
	case "PUT":
		return MethodPut
	case "DELETE":
		return MethodDelete
	default:
		return MethodUnsupported
	}
}

func (m Method) String() string {
	switch m {
	case MethodOptions:
		return "OPTIONS"
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "UNSUPPORTED"
	}
}

// productBody разбирает тело POST/PUT. Поля-указатели отличают отсутствие значения от пустого.
type productBody struct {
	ID            any                 `json:"id"`
	Photo         *string             `json:"photo"`
	Hint          *string             `json:"hint"`
	SKU           *string             `json:"sku"`
	SellingPrice  decimal.NullDecimal `json:"sellingPrice"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	Quantity      any                 `json:"quantity"`
}

// ProductInput описывает тело POST/PUT для клиентов. id обязателен только для PUT.
type ProductInput struct {
	ID            *int64   `json:"id,omitempty" example:"12"`
	Photo         *string  `json:"photo,omitempty"`
	Hint          *string  `json:"hint,omitempty" example:"Pen"`
	SKU           *string  `json:"sku,omitempty" example:"PEN-1"`
	SellingPrice  *float64 `json:"sellingPrice,omitempty" example:"2.5"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty" example:"1.2"`
	Quantity      *int64   `json:"quantity,omitempty" example:"10"`
}

// ProductView задаёт элемент списка товаров в ответе GET.
type ProductView struct {
	ID            string   `json:"id"`
	Photo         *string  `json:"photo"`
	Hint          string   `json:"hint"`
	SKU           string   `json:"sku"`
	SellingPrice  *float64 `json:"sellingPrice"`
	PurchasePrice *float64 `json:"purchasePrice"`
	Quantity      int64    `json:"quantity"`
	CreatedAt     string   `json:"createdAt"`
	Margin        *float64 `json:"margin,omitempty"`
	MarginPercent *float64 `json:"marginPercent,omitempty"`
}

type CreatedResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
