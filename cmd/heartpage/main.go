package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/ericfisherdev/heartpage/internal/adapter/driven/clock"
	"github.com/ericfisherdev/heartpage/internal/adapter/driven/random"
	httphandler "github.com/ericfisherdev/heartpage/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/heartpage/internal/adapter/driving/web"
	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/config"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration; a .env file is optional.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"reference_instant", cfg.ReferenceInstant,
		"timezone", cfg.Location.String(),
		"locale", cfg.Locale,
		"max_streams", cfg.MaxStreams,
	)

	labels, err := model.LabelsFor(cfg.Locale)
	if err != nil {
		return err
	}

	// 2. Resolve the reference instant. Unparsable is not fatal.
	reference := cfg.Reference()
	if reference.Valid() {
		slog.Info("reference instant resolved",
			"at", reference.Time().Format(time.RFC3339),
			"since", humanize.Time(reference.Time()),
		)
	} else {
		slog.Warn("reference instant is not parsable, counter will display zero",
			"reference_instant", cfg.ReferenceInstant,
		)
	}

	// 3. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Wire the scene service on the system clock.
	scenes := application.NewSceneService(reference, clock.System{}, &random.Source{}, random.UUIDs{})

	// 5. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(scenes, labels, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 6. Create web handler and register page routes.
	webHandler := webhandler.NewHandler(scenes, labels, webhandler.PageOptions{
		Title:       cfg.Title,
		Message:     cfg.Message,
		TrackID:     cfg.TrackID,
		ImageDir:    cfg.ImageDir,
		ImageName:   cfg.ImageName,
		ImageAlt:    cfg.ImageAlt,
		ImageWidth:  cfg.ImageWidth,
		ImageHeight: cfg.ImageHeight,
		MaxStreams:  cfg.MaxStreams,
	}, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	// No WriteTimeout: /events streams for as long as the page is open.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	// 7. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		return err
	}

	// 8. Graceful shutdown with 10s timeout. Open streams end when the base
	// context is cancelled, which tears their scenes down.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
