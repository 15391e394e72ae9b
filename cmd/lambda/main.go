package main

import (
	"context"
	"os"

	"github.com/DRSN-tech/products-backend/internal/app"
	config "github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/aws/aws-lambda-go/lambda"
)

// Пул соединений создаётся один раз на окружение исполнения и переживает вызовы.
func main() {
	bootLog := logger.NewSlogLogger()

	cfg, err := config.LoadFromEnv(bootLog)
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

	lambda.StartWithOptions(
		application.Handler().HandleAPIGatewayProxy,
		lambda.WithEnableSIGTERM(func() {
			if err := application.Close(context.Background()); err != nil {
				log.Warnf("%v", err)
			}
		}),
	)
}
