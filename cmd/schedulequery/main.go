package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"media_core/internal/app"
	"media_core/internal/config"
	"media_core/internal/domain"
	"media_core/internal/schedule"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	channels := flag.String("channels", "", "comma separated channel ids")
	from := flag.String("from", "", "window start, RFC 3339")
	to := flag.String("to", "", "window end, RFC 3339")
	count := flag.Int("count", 0, "entries per channel from -from; overrides -to")
	source := flag.String("source", "", "schedule source publisher")
	override := flag.String("override", "", "override schedule source publisher")
	appID := flag.String("app", "", "application id from config")
	flag.Parse()

	logger := app.SetupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = app.SetupLogger(cfg.LogLevel)

	q := schedule.ScheduleQuery{Source: domain.Publisher(*source), Count: *count}
	for _, raw := range strings.Split(*channels, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			logger.Error("invalid channel id", "value", raw, "error", err)
			os.Exit(2)
		}
		q.ChannelIDs = append(q.ChannelIDs, domain.ID(id))
	}
	if q.Start, err = time.Parse(time.RFC3339, *from); err != nil {
		logger.Error("invalid -from", "error", err)
		os.Exit(2)
	}
	if q.Count <= 0 {
		if q.End, err = time.Parse(time.RFC3339, *to); err != nil {
			logger.Error("invalid -to", "error", err)
			os.Exit(2)
		}
	}
	if *override != "" {
		p := domain.Publisher(*override)
		q.Override = &p
	}
	if *appID != "" {
		application, ok := cfg.Application(*appID)
		if !ok {
			logger.Error("unknown application", "app", *appID)
			os.Exit(2)
		}
		q.Application = application
	}

	ctx := context.Background()

	db, err := app.OpenDB(ctx, cfg.Database, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redis, err := app.OpenRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redis != nil {
		defer redis.Close()
	}

	stores, err := app.NewStores(db, cfg, nil, redis, logger)
	if err != nil {
		logger.Error("failed to build stores", "error", err)
		os.Exit(1)
	}

	schedules, err := stores.QueryExecutor(cfg.Schedule, logger).Execute(ctx, q)
	if err != nil {
		logger.Error("schedule query failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schedules); err != nil {
		logger.Error("failed to write schedules", "error", err)
		os.Exit(1)
	}
}
