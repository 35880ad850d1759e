package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"leetdash/internal/server"
)

// Serve runs the forwarding proxy for the upstream GraphQL API.
//
// Blocks until interrupted, then drains in-flight requests before exiting.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if cmd.IsSet("host") {
		r.config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		r.config.Server.Port = cmd.Int("port")
	}

	router := server.NewBasicRouter()
	router.Use(
		server.Logging(r.logger),
		server.RateLimit(r.config.LeetCode.RateLimit),
	)
	router.Handler(server.NewGraphQLProxy(r.config.LeetCode.Endpoint, r.httpClient, r.logger))
	router.Handler(&server.HealthHandler{})

	srv := &http.Server{
		Addr:              r.config.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("proxy listening", "addr", srv.Addr, "upstream", r.config.LeetCode.Endpoint)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.logger.Info("shutting down proxy")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
