// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/rotas/builder"
)

const (
	defaultAddr          = "127.0.0.1:8090"
	defaultSearchTimeout = 5 * time.Second
	defaultLogLevel      = "info"
)

// Config is the daemon configuration. Each field is taken from its flag,
// else from the ROTAS_* environment variable, else from the default.
type Config struct {
	Addr          string
	MapPath       string
	Demo          string
	LogLevel      slog.Level
	LogJSON       bool
	SearchTimeout time.Duration
}

func LoadConfig(args []string) (Config, error) {
	timeout := defaultSearchTimeout
	if v := os.Getenv("ROTAS_SEARCH_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ROTAS_SEARCH_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	flagSet := flag.NewFlagSet("rotasd", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagAddr := flagSet.String("addr", envOrDefault("ROTAS_ADDR", defaultAddr), "HTTP listen address")
	flagMap := flagSet.String("map", os.Getenv("ROTAS_MAP"), "map file; empty serves the -demo map")
	flagDemo := flagSet.String("demo", envOrDefault("ROTAS_DEMO", builder.DefaultDemo), "built-in map: square|romania")
	flagLevel := flagSet.String("log-level", envOrDefault("ROTAS_LOG_LEVEL", defaultLogLevel), "debug|info|warn|error")
	flagJSON := flagSet.Bool("log-json", os.Getenv("ROTAS_LOG_JSON") != "", "log as JSON")
	flagTimeout := flagSet.String("search-timeout", timeout.String(), "per-request search timeout")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(os.Stdout)
			flagSet.PrintDefaults()
		}
		return Config{}, err
	}

	parsedTimeout, err := time.ParseDuration(*flagTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid search timeout: %w", err)
	}
	if parsedTimeout <= 0 {
		return Config{}, errors.New("search timeout must be positive")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*flagLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", *flagLevel, err)
	}

	cfg := Config{
		Addr:          strings.TrimSpace(*flagAddr),
		MapPath:       strings.TrimSpace(*flagMap),
		Demo:          strings.TrimSpace(*flagDemo),
		LogLevel:      level,
		LogJSON:       *flagJSON,
		SearchTimeout: parsedTimeout,
	}
	if cfg.Addr == "" {
		return Config{}, errors.New("addr cannot be empty")
	}
	if cfg.MapPath == "" {
		if _, err := builder.LookupDemo(cfg.Demo); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// newLogger builds the process logger from cfg.
func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
