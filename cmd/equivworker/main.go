package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"media_core/internal/app"
	"media_core/internal/config"
	"media_core/internal/messaging"
	"media_core/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := app.SetupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = app.SetupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := app.OpenDB(ctx, cfg.Database, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mq, err := messaging.NewRabbitMQ(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer mq.Close()

	stores, err := app.NewStores(db, cfg, mq, nil, logger)
	if err != nil {
		logger.Error("failed to build stores", "error", err)
		os.Exit(1)
	}

	handlers := worker.NewHandlers(stores.Equivalents, stores.Contents, stores.Schedules, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting equivalent content worker",
		"content_queue", cfg.RabbitMQ.Content.QueueName,
		"graph_queue", cfg.RabbitMQ.Graph.QueueName,
		"prefetch", cfg.RabbitMQ.Prefetch,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mq.Consume(gctx, cfg.RabbitMQ.Content.QueueName, handlers.ContentUpdated)
	})
	g.Go(func() error {
		return mq.Consume(gctx, cfg.RabbitMQ.Graph.QueueName, handlers.GraphUpdated)
	})
	if err := g.Wait(); err != nil {
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
