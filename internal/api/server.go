package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/api/handler"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/api/handler/router"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/config"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/dataset"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/scheduler"
	"github.com/stellarus-dev/analytics-dashboard-api/internal/usecases/aggregating"
	"github.com/stellarus-dev/analytics-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService aggregating.Insighter,
	store dataset.Provider,
	refreshService *scheduler.DatasetRefreshService,
) (*Server, error) {
	datasetServices := handler.DatasetServices{
		Store:   store,
		Refresh: refreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Charts(insightService)...),
		router.WithRoutes(handler.DatasetRoutes(datasetServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.CORS.AllowedOrigins),
	}

	handlerChain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handlerChain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
