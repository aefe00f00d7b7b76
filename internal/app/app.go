// Package app wires the stores shared by the commands.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"media_core/internal/cache"
	"media_core/internal/clock"
	"media_core/internal/config"
	"media_core/internal/content"
	"media_core/internal/domain"
	"media_core/internal/equivalence"
	"media_core/internal/equivcontent"
	"media_core/internal/hashing"
	"media_core/internal/schedule"
	"media_core/internal/storage/cached"
	"media_core/internal/storage/postgres"
)

// Sender publishes every kind of update message.
type Sender interface {
	content.MessageSender
	equivalence.MessageSender
	equivcontent.MessageSender
}

type Stores struct {
	Contents    *content.Store
	Graphs      *equivalence.Store
	Equivalents *equivcontent.Store
	Schedules   *postgres.Schedules
	Channels    cached.ChannelStore
	Normalizer  *domain.AliasNormalizer
}

// OpenDB connects to postgres and applies pending migrations.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig, migrationsPath string, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Host, "dbname", cfg.DBName)

	if err := postgres.RunMigrations(cfg.URL(), migrationsPath); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("migrations applied", "path", migrationsPath)
	return db, nil
}

// NewStores builds every store over db. sender may be nil for read-only
// use, and redis may be nil to read channels straight from postgres.
func NewStores(db *sqlx.DB, cfg *config.Config, sender Sender, redis *cache.Redis, logger *slog.Logger) (*Stores, error) {
	normalizer, err := cfg.AliasNormalizer()
	if err != nil {
		return nil, fmt.Errorf("build alias normalizer: %w", err)
	}

	var (
		contentSender    content.MessageSender
		graphSender      equivalence.MessageSender
		equivalentSender equivcontent.MessageSender
	)
	if sender != nil {
		contentSender, graphSender, equivalentSender = sender, sender, sender
	}

	tm := postgres.NewTransactionManager(db)
	sys := clock.System{}

	graphs := equivalence.NewStore(postgres.NewGraphs(db, tm), sys, graphSender, logger, cfg.Equivalence)
	contents := content.NewStore(
		postgres.NewContentRows(db, tm),
		postgres.NewIDSequence(db),
		hashing.NewContentHasher(),
		sys,
		contentSender,
		graphs,
		normalizer,
		logger,
		cfg.Content,
	)
	equivalents := equivcontent.NewStore(postgres.NewEquivalentContent(db, tm), contents, graphs, sys, equivalentSender, logger)

	var channels cached.ChannelStore = postgres.NewChannels(db)
	if redis != nil {
		channels = cached.NewChannels(channels, cache.NewChannels(redis, cfg.Redis.ChannelTTL), logger)
	}

	return &Stores{
		Contents:    contents,
		Graphs:      graphs,
		Equivalents: equivalents,
		Schedules:   postgres.NewSchedules(db, tm),
		Channels:    channels,
		Normalizer:  normalizer,
	}, nil
}

// OpenRedis connects when the cache is enabled and returns nil otherwise.
func OpenRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*cache.Redis, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	r, err := cache.New(cfg.URL)
	if err != nil {
		return nil, err
	}
	if err := r.Ping(ctx); err != nil {
		r.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("connected to redis")
	return r, nil
}

// QueryExecutor assembles the schedule query path over stores.
func (s *Stores) QueryExecutor(cfg config.ScheduleConfig, logger *slog.Logger) *schedule.QueryExecutor {
	var end *time.Duration
	if cfg.EndFlexibility > 0 {
		end = &cfg.EndFlexibility
	}
	matcher := schedule.NewBroadcastMatcher(s.Normalizer, cfg.StartFlexibility, end)
	resolver := schedule.NewResolver(s.Schedules, s.Equivalents, s.Contents, s.Graphs, logger, cfg)
	return schedule.NewQueryExecutor(s.Channels, resolver, matcher, logger, cfg)
}

func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
