package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
)

// ProductHandler отдаёт ProductsHandler по HTTP: все методы на /products уходят в Handle.
type ProductHandler struct {
	products *function.ProductsHandler
	logger   logger.Logger
}

func NewProductHandler(products *function.ProductsHandler, logger logger.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

func (p *ProductHandler) handle(w http.ResponseWriter, r *http.Request) {
	req, err := toFunctionRequest(r)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			p.logger.Warnf("%d %s", http.StatusRequestEntityTooLarge, err.Error())
			WriteError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		p.logger.Errorf(err, "%d failed to read request", http.StatusInternalServerError)
		WriteError(w, http.StatusInternalServerError, e.ErrInternalServerError.Error())
		return
	}

	WriteResponse(w, p.products.Handle(r.Context(), req))
}

func (p *ProductHandler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	p.logger.Warnf("%d %s %s", http.StatusMethodNotAllowed, r.Method, r.URL.Path)
	WriteResponse(w, function.MethodNotAllowed())
}

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// healthz
//
//	@Summary	Проверка доступности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/healthz [get]
func healthz(checker HealthChecker, logger logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Ping(r.Context()); err != nil {
				logger.Errorf(err, "%d health check failed", http.StatusServiceUnavailable)
				WriteSuccess(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
				return
			}
		}

		WriteSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
