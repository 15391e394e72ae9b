package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

// Middlewares собирает цепочку middleware HTTP-сервера.
func Middlewares(c *cfg.HTTPConfig, log logger.Logger) []func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})

	middlewares := []func(http.Handler) http.Handler{
		middleware.RealIP,
		middleware.RequestID,
		requestLogger(log),
		middleware.Recoverer,
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := secureMiddleware.Process(w, r); err != nil {
					log.Warnf("secure headers blocked request: %v", err)
					WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
					return
				}
				next.ServeHTTP(w, r)
			})
		},
		maxBody(c.MaxBodyBytes),
	}

	if c.RequestTimeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(c.RequestTimeout))
	}
	if c.RateLimit > 0 {
		middlewares = append(middlewares, httprate.Limit(c.RateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				WriteError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
			}),
		))
	}

	return middlewares
}

func maxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger пишет одну строку на запрос: метод, путь, код, размер и длительность.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof("%s %s %d %dB %s request_id=%s",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
				time.Since(start).Round(time.Microsecond), middleware.GetReqID(r.Context()))
		})
	}
}
