package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	v1Http "github.com/DRSN-tech/products-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/products-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/products-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/products-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/products-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/products-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/products-backend/internal/usecase"
	"github.com/DRSN-tech/products-backend/pkg/clients"
	"github.com/DRSN-tech/products-backend/pkg/closer"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/DRSN-tech/products-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 10 * time.Second
)

// App держит собранные зависимости. Один и тот же App обслуживает HTTP-сервер,
// Lambda и разовый вызов из CLI.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	closer   *closer.Closer
	db       *postgres.PgDatabase
	products *function.ProductsHandler
}

// NewApp подключается к PostgreSQL и, если они настроены, к Redis и Kafka.
// Недоступность Redis или Kafka при старте не фатальна: приложение работает без них.
func NewApp(ctx context.Context, cfg *config.Config, logger logger.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	c := closer.NewCloser(0)

	db, err := postgres.Connect(ctx, cfg.Db, logger)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.AddFunc("postgres", db.Close)

	productRepo := pgdb.NewProductRepo(db.Pool, &pgdbConv.ProductConverterImpl{})

	var cacheRepo usecase.CacheRepository
	if cfg.Redis.Enabled() {
		redisClient := clients.NewRedisClient(cfg.Redis)
		c.Add("redis", func(context.Context) error { return redisClient.Close() })

		if err := redisClient.Ping(ctx); err != nil {
			logger.Warnf("redis is unavailable, products list is served without cache: %v", err)
		}
		cacheRepo = redis.NewCacheRepo(redisClient, &redisConv.ProductConverterImpl{}, cfg.Redis, logger)
	}

	var producer usecase.MessageProducer
	if cfg.Kafka.Enabled() {
		p := kafka.NewProducer(logger, cfg.Kafka)
		c.Add("kafka", func(context.Context) error { return p.Close() })

		if err := p.EnsureTopic(topicTimeout); err != nil {
			logger.Warnf("failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
		}
		producer = p
	}

	productUC := usecase.NewProductUC(productRepo, cacheRepo, producer, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		closer:   c,
		db:       db,
		products: function.NewProductsHandler(productUC, logger),
	}, nil
}

// Handler возвращает обработчик событий над товарами.
func (a *App) Handler() *function.ProductsHandler {
	return a.products
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.cfg.Http, a.logger)
	router.Init(a.products, a.db)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		errCh <- httpSrv.Run()
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		if appErr != nil {
			a.logger.Errorf(appErr, "HTTP server fatal error")
		}
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// Close освобождает Kafka, Redis и пул PostgreSQL в обратном порядке.
func (a *App) Close(ctx context.Context) error {
	return a.closer.Close(ctx)
}

// NewLogger строит логгер по разделу LOG_* конфигурации.
func NewLogger(cfg *config.LogCfg, opts logger.Options) *logger.SlogLogger {
	opts.Format = cfg.Format
	opts.Level = cfg.Level
	return logger.NewSlogLoggerWithOptions(opts)
}
