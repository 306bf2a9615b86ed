// Command heartrain renders the greeting scene in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/ericfisherdev/heartpage/internal/adapter/driven/clock"
	"github.com/ericfisherdev/heartpage/internal/adapter/driven/random"
	"github.com/ericfisherdev/heartpage/internal/adapter/driving/terminal"
	"github.com/ericfisherdev/heartpage/internal/application"
	"github.com/ericfisherdev/heartpage/internal/config"
	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "heartrain:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	labels, err := model.LabelsFor(cfg.Locale)
	if err != nil {
		return err
	}

	reference := cfg.Reference()
	if !reference.Valid() {
		logger.Warn("reference instant is not parsable, counter will display zero",
			"reference_instant", cfg.ReferenceInstant,
		)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sys := clock.System{}
	scenes := application.NewSceneService(reference, sys, &random.Source{}, random.UUIDs{})
	renderer := terminal.NewRenderer(screen, scenes, sys, labels, terminal.CardOptions{
		Title:   cfg.Title,
		TrackID: cfg.TrackID,
	}, logger)

	return renderer.Run(ctx)
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }, nil
}
