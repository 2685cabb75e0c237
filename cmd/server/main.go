package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Munhboldn/happyboard/internal/config"
	"github.com/Munhboldn/happyboard/internal/happiness"
	"github.com/Munhboldn/happyboard/internal/logging"
	"github.com/Munhboldn/happyboard/internal/web"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	data, err := happiness.Load(cfg.Data.File)
	if err != nil {
		var malformed *happiness.MalformedDataError
		if errors.As(err, &malformed) {
			slog.Error("dataset is malformed, refusing to start",
				"path", malformed.Path, "line", malformed.Line, "reason", malformed.Reason)
		} else {
			slog.Error("failed to load dataset", "path", cfg.Data.File, "error", err)
		}
		os.Exit(1)
	}

	minYear, maxYear := data.YearRange()
	slog.Info("dataset loaded",
		"path", cfg.Data.File,
		"records", data.Len(),
		"countries", len(data.Countries()),
		"years", []int{minYear, maxYear})

	server := web.NewServer(data, cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("received shutdown signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("server stopped")
}
