package http

import (
	_ "github.com/DRSN-tech/products-backend/docs" // регистрирует описание API в swag
	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.HTTPConfig
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(products *function.ProductsHandler, health HealthChecker) {
	r.router.Use(Middlewares(r.cfg, r.logger)...)

	prHandler := NewProductHandler(products, r.logger)
	r.router.MethodNotAllowed(prHandler.methodNotAllowed)

	r.router.Get("/healthz", healthz(health, r.logger))
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.SwaggerURL),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, prHandler)
	})
}

// registerProductRoutes вешает обработчик на все методы: OPTIONS и неподдерживаемые методы
// разбирает сам ProductsHandler.
func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.HandleFunc("/products", prHandler.handle)
	router.HandleFunc("/products/", prHandler.handle)
}
