package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	"github.com/DRSN-tech/products-backend/internal/domain"
	"github.com/DRSN-tech/products-backend/internal/usecase"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceRepo struct {
	mu    sync.Mutex
	items []domain.Product
	seq   int64
}

func (s *sliceRepo) List(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.items))
	for i := range s.items {
		out[len(s.items)-1-i] = s.items[i]
	}
	return out, nil
}

func (s *sliceRepo) Create(_ context.Context, f *domain.ProductFields) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p := domain.Product{
		ID: s.seq, Photo: f.Photo, Hint: f.Hint, SKU: f.SKU,
		SellingPrice: f.SellingPrice, PurchasePrice: f.PurchasePrice, Quantity: f.Quantity,
		CreatedAt: "2026-05-01 10:00:00+00",
	}
	s.items = append(s.items, p)
	return &p, nil
}

func (s *sliceRepo) Update(context.Context, int64, *domain.ProductFields) error { return nil }

func (s *sliceRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, p := range s.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.items = kept
	return nil
}

type stubChecker struct{ err error }

func (c stubChecker) Ping(context.Context) error { return c.err }

func newTestServer(t *testing.T, httpCfg *cfg.HTTPConfig, checker HealthChecker) *httptest.Server {
	t.Helper()

	log := logger.NewSlogLoggerWithOptions(logger.Options{Output: io.Discard})
	products := function.NewProductsHandler(usecase.NewProductUC(&sliceRepo{}, nil, nil, log), log)

	r := chi.NewRouter()
	NewRouter(r, httpCfg, log).Init(products, checker)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func defaultHTTPConfig() *cfg.HTTPConfig {
	return &cfg.HTTPConfig{
		RequestTimeout: 5 * time.Second,
		MaxBodyBytes:   1 << 20,
		SwaggerURL:     "/swagger/doc.json",
	}
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestProductsOverHTTP(t *testing.T) {
	srv := newTestServer(t, defaultHTTPConfig(), nil)
	url := srv.URL + "/api/v1/products"

	resp, body := do(t, http.MethodPost, url, `{"hint":"Pen","sku":"PEN-1","sellingPrice":2.5,"quantity":10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	var created function.CreatedResponse
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	resp, body = do(t, http.MethodGet, url, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":"1","photo":null,"hint":"Pen","sku":"PEN-1","sellingPrice":2.5,"purchasePrice":null,"quantity":10,"createdAt":"2026-05-01 10:00:00+00"}]`, body)

	resp, body = do(t, http.MethodDelete, url+"?id="+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, body)

	_, body = do(t, http.MethodGet, url, "")
	assert.Equal(t, "[]", body)
}

func TestPreflightOverHTTP(t *testing.T) {
	srv := newTestServer(t, defaultHTTPConfig(), nil)

	resp, body := do(t, http.MethodOptions, srv.URL+"/api/v1/products", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", resp.Header.Get("Access-Control-Max-Age"))
}

func TestUnsupportedMethodsOverHTTP(t *testing.T) {
	srv := newTestServer(t, defaultHTTPConfig(), nil)

	for _, method := range []string{http.MethodPatch, "PURGE"} {
		resp, body := do(t, method, srv.URL+"/api/v1/products", "")

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, body)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	}
}

func TestBodyLimit(t *testing.T) {
	c := defaultHTTPConfig()
	c.MaxBodyBytes = 16
	srv := newTestServer(t, c, nil)

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/v1/products", `{"hint":"`+strings.Repeat("x", 64)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	c := defaultHTTPConfig()
	c.RateLimit = 2
	srv := newTestServer(t, c, nil)

	for i := 0; i < 2; i++ {
		resp, _ := do(t, http.MethodGet, srv.URL+"/api/v1/products", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/v1/products", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, defaultHTTPConfig(), stubChecker{})
	resp, body := do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	srv = newTestServer(t, defaultHTTPConfig(), stubChecker{err: errors.New("pool closed")})
	resp, body = do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"status":"unavailable"}`, body)
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, defaultHTTPConfig(), nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Contains(t, doc["paths"], "/products")
}
