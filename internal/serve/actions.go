package serve

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/docstats/internal/config"
	"github.com/dtnitsch/docstats/internal/gcs"
	"github.com/dtnitsch/docstats/internal/metrics"
	"github.com/dtnitsch/docstats/internal/resolve"
	"github.com/dtnitsch/docstats/pkg/fetcher"
)

// Action runs the HTTP API server until interrupted.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Port = c.Int("port")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var blob resolve.BlobReader
	reader, err := gcs.NewReader(ctx)
	if err != nil {
		logger.Warn("GCS storage unavailable, gcs_pdf_uri sources will fail", "error", err)
	} else {
		blob = reader
		defer reader.Close()
	}

	resolver := resolve.New(fetcher.NewFetcher(), blob, logger)
	engine := metrics.NewEngine(logger)
	srv := NewServer(resolver, engine, logger)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
