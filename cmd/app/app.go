package main

import (
	"context"
	"os"

	"github.com/DRSN-tech/products-backend/internal/app"
	config "github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/pkg/logger"
)

//	@title			Products API
//	@version		1.0
//	@description	CRUD над товарами склада.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	bootLog := logger.NewSlogLogger()

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log, logger.Options{})

	application, err := app.NewApp(context.Background(), cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
