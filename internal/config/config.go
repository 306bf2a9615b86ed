// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ericfisherdev/heartpage/internal/domain/model"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string

	// ReferenceInstant is kept raw; an unparsable value is not a load error.
	ReferenceInstant string
	Location         *time.Location
	Locale           model.Locale

	Title   string
	Message string
	TrackID string

	ImageDir    string
	ImageName   string
	ImageAlt    string
	ImageWidth  int
	ImageHeight int

	MaxStreams int
	LogFile    string
}

// Reference parses the configured reference instant in the configured location.
func (c *Config) Reference() model.ReferenceInstant {
	return model.ParseReferenceInstant(c.ReferenceInstant, c.Location)
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional. HEARTPAGE_TIMEZONE defaults to host-local time,
// HEARTPAGE_LOCALE to "pt", HEARTPAGE_LISTEN_ADDR to 127.0.0.1:8080.
// Invalid timezones, locales, and integers are errors; a malformed
// HEARTPAGE_REFERENCE_INSTANT is not, the counter just displays zero.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:       envOr("HEARTPAGE_LISTEN_ADDR", "127.0.0.1:8080"),
		ReferenceInstant: envOr("HEARTPAGE_REFERENCE_INSTANT", "2024-09-07T00:00:00"),
		Location:         time.Local,
		Locale:           model.LocalePortuguese,
		Title:            envOr("HEARTPAGE_TITLE", "Nosso primeiro dia dos namorados"),
		Message:          os.Getenv("HEARTPAGE_MESSAGE"),
		TrackID:          envOr("HEARTPAGE_TRACK_ID", "3g5FrnRdbmDQyWNiDIprts"),
		ImageDir:         envOr("HEARTPAGE_IMAGE_DIR", "public"),
		ImageName:        envOr("HEARTPAGE_IMAGE_NAME", "quanto-teste.jpeg"),
		ImageAlt:         envOr("HEARTPAGE_IMAGE_ALT", "Quanto teste"),
		LogFile:          os.Getenv("HEARTPAGE_LOG_FILE"),
	}

	if v, ok := os.LookupEnv("HEARTPAGE_TIMEZONE"); ok && v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("HEARTPAGE_TIMEZONE has invalid location %q: %w", v, err)
		}
		cfg.Location = loc
	}

	if v, ok := os.LookupEnv("HEARTPAGE_LOCALE"); ok && v != "" {
		locale := model.Locale(v)
		if _, err := model.LabelsFor(locale); err != nil {
			return nil, fmt.Errorf("HEARTPAGE_LOCALE: %w", err)
		}
		cfg.Locale = locale
	}

	var err error
	if cfg.ImageWidth, err = positiveIntEnv("HEARTPAGE_IMAGE_WIDTH", 400); err != nil {
		return nil, err
	}
	if cfg.ImageHeight, err = positiveIntEnv("HEARTPAGE_IMAGE_HEIGHT", 300); err != nil {
		return nil, err
	}
	if cfg.MaxStreams, err = positiveIntEnv("HEARTPAGE_MAX_STREAMS", 64); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func positiveIntEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}
