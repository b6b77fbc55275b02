package bootstrap

import (
	"context"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"frankies/internal/pkg/logger"
)

// Worker is a long-running background component (e.g. a Kafka consumer)
// whose lifetime is tied to the service.
type Worker interface {
	Run(ctx context.Context) error
}

// AppInfo describes one service: its HTTP surface, background workers and
// the cleanup hooks to run on shutdown (last registered first).
type AppInfo struct {
	ServiceName string
	Port        int
	Handler     http.Handler
	Workers     []Worker
	Cleanup     []func(ctx context.Context) error
}

// StartService runs the HTTP server and workers until SIGINT/SIGTERM, then
// shuts everything down in order with a bounded grace period.
func StartService(info AppInfo) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var server *http.Server
	if info.Handler != nil {
		server = &http.Server{Addr: ":" + strconv.Itoa(info.Port), Handler: info.Handler}
		g.Go(func() error {
			logger.L().Info().Int("port", info.Port).Msgf("%s listening", info.ServiceName)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	for _, w := range info.Workers {
		worker := w
		g.Go(func() error { return worker.Run(gctx) })
	}

	<-gctx.Done()
	logger.L().Info().Msgf("shutting down %s", info.ServiceName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.L().Error().Err(err).Msg("http server shutdown failed")
		}
	}
	for i := len(info.Cleanup) - 1; i >= 0; i-- {
		if err := info.Cleanup[i](shutdownCtx); err != nil {
			logger.L().Error().Err(err).Msg("cleanup hook failed")
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msgf("%s stopped", info.ServiceName)
	return nil
}
