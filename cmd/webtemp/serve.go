package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/weegigs/webtemp/support"
)

const shutdownTimeout = 5 * time.Second

func runServe(ctx context.Context, cfg support.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	server, cleanup, err := live(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to configure server")
		return err
	}
	defer cleanup()

	listener, err := listen(cfg)
	if err != nil {
		logger.Error().Err(err).Str("address", cfg.Address()).Msg("failed to listen")
		return err
	}

	logger.Info().Str("address", listener.Addr().String()).Str("file", cfg.File).Msg("listening")
	return serve(ctx, server, listener)
}

func listen(cfg support.Config) (net.Listener, error) {
	return net.Listen("tcp", cfg.Address())
}

// serve blocks until the server fails or ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, server *http.Server, listener net.Listener) error {
	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdown)
	}
}
