package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/DRSN-tech/products-backend/internal/app"
	config "github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/internal/delivery/v1/function"
	"github.com/DRSN-tech/products-backend/pkg/logger"
)

// invoke выполняет одно событие и печатает ответ в stdout. Логи идут в stderr.
//
//	echo '{"httpMethod":"GET"}' | invoke
//	invoke -event event.json
func main() {
	eventPath := flag.String("event", "", "path to event JSON (stdin if empty)")
	flag.Parse()

	bootLog := logger.NewSlogLoggerWithOptions(logger.Options{Output: os.Stderr})

	req, err := readEvent(*eventPath)
	if err != nil {
		bootLog.Errorf(err, "failed to read event")
		os.Exit(2)
	}

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}
	log := app.NewLogger(cfg.Log, logger.Options{Output: os.Stderr})

	ctx := context.Background()
	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(ctx); err != nil {
			log.Warnf("%v", err)
		}
	}()

	resp := application.Handler().Handle(ctx, req)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Errorf(err, "failed to write response")
	}
}

func readEvent(path string) (*function.Request, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var req function.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	return &req, nil
}
