package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/api"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/config"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/scheduler"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/usecases/aggregating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing or malformed CSV is fatal at startup; the frontend has
	// nothing to show without it.
	store := dataset.NewStore(cfg.Dataset.CSVPath)
	if err := store.Load(); err != nil {
		logrus.WithError(err).WithField("path", cfg.Dataset.CSVPath).Fatal("could not load dataset")
	}

	insightService := aggregating.NewService(store)

	refreshService := scheduler.NewDatasetRefreshService(store, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("could not start the dataset refresh scheduler")
	}

	if cfg.Dataset.WatchEnabled {
		watcher, err := dataset.NewWatcher(store, cfg.Dataset.CSVPath)
		if err != nil {
			logrus.WithError(err).Warn("could not start the dataset file watcher, relying on the refresh schedule")
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	server, err := api.New(cfg, insightService, store, refreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
