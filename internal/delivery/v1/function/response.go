package function

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/products-backend/pkg/e"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderMaxAge       = "Access-Control-Max-Age"
	HeaderContentType  = "Content-Type"

	AllowedMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	AllowedHeaders  = "Content-Type"
	PreflightMaxAge = "86400"
	ContentTypeJSON = "application/json"
)

// preflightHeaders содержит полный набор CORS-заголовков ответа на OPTIONS.
func preflightHeaders() map[string]string {
	return map[string]string{
		HeaderAllowOrigin:  "*",
		HeaderAllowMethods: AllowedMethods,
		HeaderAllowHeaders: AllowedHeaders,
		HeaderMaxAge:       PreflightMaxAge,
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAllowOrigin: "*",
	}
}

func preflight() *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Headers:    preflightHeaders(),
		Body:       "",
	}
}

// MethodNotAllowed строит ответ 405 только с заголовком Access-Control-Allow-Origin.
func MethodNotAllowed() *Response {
	body, _ := json.Marshal(ErrorResponse{Error: e.ErrMethodNotAllowed.Error()})

	return &Response{
		StatusCode: http.StatusMethodNotAllowed,
		Headers:    map[string]string{HeaderAllowOrigin: "*"},
		Body:       string(body),
	}
}

func writeJSON(status int, data any) *Response {
	body, err := json.Marshal(data)
	if err != nil {
		return writeError(e.Wrap("marshal response", err))
	}

	return &Response{
		StatusCode: status,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}
}

func writeError(err error) *Response {
	code, msg := ToHTTPResponse(err)
	body, _ := json.Marshal(ErrorResponse{Error: msg})

	return &Response{
		StatusCode: code,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}
}

// ToHTTPResponse сопоставляет ошибку с кодом ответа и текстом для клиента.
// Текст ошибок хранилища наружу не отдаётся.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidBody),
		errors.Is(err, e.ErrIDRequired),
		errors.Is(err, e.ErrInvalidID),
		errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, e.ErrMethodNotAllowed.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}
