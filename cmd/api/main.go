package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/ndraey/bookstore-api/internal/bootstrap"
	"github.com/ndraey/bookstore-api/internal/logger"
)

const shutdownGrace = 15 * time.Second

// httpServer is the slice of *http.Server that Run depends on, so tests can
// substitute a fake.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}

type realServer struct{ *http.Server }

func (r realServer) Addr() string { return r.Server.Addr }

// serverBuilder produces a server plus the cleanup to run at exit.
type serverBuilder func() (httpServer, func(), error)

// Run serves until a signal arrives on sigCh or the server fails, then
// drains in-flight requests within shutdownGrace. Exit code 0 means a
// signal-driven stop; 1 means the build or the server itself failed.
func Run(build serverBuilder, sigCh <-chan os.Signal, lg zerolog.Logger) int {
	srv, cleanup, err := build()
	if err != nil {
		lg.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	defer cleanup()

	crashed := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", srv.Addr()).Msg("http server listening")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			crashed <- err
		}
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("stopping on signal")
	case err := <-crashed:
		lg.Error().Err(err).Msg("http server failed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		// Shutdown left connections open past the grace period; drop them.
		lg.Error().Err(err).Msg("graceful shutdown failed, closing")
		_ = srv.Close()
	}

	lg.Info().Msg("stopped")
	return 0
}

func buildFromBootstrap() (httpServer, func(), error) {
	srv, cleanup, err := bootstrap.NewServer()
	if err != nil {
		return nil, nil, err
	}
	return realServer{srv}, cleanup, nil
}

func main() {
	logger.Init()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	os.Exit(Run(buildFromBootstrap, sigCh, zlog.Logger))
}
