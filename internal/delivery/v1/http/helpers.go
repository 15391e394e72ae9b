package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	"github.com/DRSN-tech/products-backend/pkg/e"
)

var errBodyTooLarge = errors.New("request body too large")

// toFunctionRequest переводит *http.Request в событие обработчика.
// Из строки запроса берётся первое значение каждого параметра.
func toFunctionRequest(r *http.Request) (*function.Request, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return nil, errBodyTooLarge
			}
			return nil, e.Wrap("read body", err)
		}
	}

	var query map[string]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		for k, v := range values {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}
	}

	return &function.Request{
		HTTPMethod:            r.Method,
		Body:                  string(body),
		QueryStringParameters: query,
	}, nil
}

// WriteResponse пишет ответ обработчика как есть: заголовки, код и тело.
func WriteResponse(w http.ResponseWriter, resp *function.Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}

// WriteError пишет JSON-ошибку с тем же CORS-заголовком, что и ответы обработчика.
func WriteError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set(function.HeaderContentType, function.ContentTypeJSON)
	w.Header().Set(function.HeaderAllowOrigin, "*")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(function.ErrorResponse{Error: msg})
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set(function.HeaderContentType, function.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
