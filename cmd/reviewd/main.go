package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"reviewd/internal/config"
	"reviewd/internal/daemon"
	"reviewd/internal/dispatch"
	"reviewd/internal/logging"
	"reviewd/internal/reviewer"
	"reviewd/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		logger.Error("open store", logging.Error(err))
		return
	}

	client := reviewer.NewClient(reviewer.Config{
		APIKey:         cfg.Reviewer.APIKey,
		BaseURL:        cfg.Reviewer.BaseURL,
		Model:          cfg.Reviewer.Model,
		TimeoutSeconds: cfg.Reviewer.TimeoutSeconds,
	})

	dispatcher := dispatch.New(st, client, cfg, logger)

	d, err := daemon.New(cfg, st, dispatcher, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		_ = st.Close()
		return
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		return
	}

	<-ctx.Done()
	logger.Info("reviewd shutting down")
}
