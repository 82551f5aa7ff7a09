package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds the application settings, read from the environment.
// A .env file, if present, is loaded by main before anything else.
type Config struct {
	Currency  string // ISO 4217 code used to display amounts
	LogLevel  string // zerolog level: debug, info, warn, error, disabled
	LogPlain  bool   // raw JSON logs instead of the console writer
	logWriter io.Writer
}

// ConfigFromEnv builds the configuration from THARWA_* variables,
// falling back to defaults.
func ConfigFromEnv() Config {
	cfg := Config{Currency: "USD", LogLevel: "info"}
	if v := os.Getenv("THARWA_CURRENCY"); v != "" {
		cfg.Currency = strings.ToUpper(strings.TrimSpace(v))
	}
	if v := os.Getenv("THARWA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("THARWA_LOG_PLAIN"); v == "1" || strings.EqualFold(v, "true") {
		cfg.LogPlain = true
	}
	return cfg
}

// NewLogger builds the application logger from the configuration.
// Logs go to stderr so they never interleave with the menu dialog on
// stdout.
func (c Config) NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	out := c.logWriter
	if out == nil {
		out = os.Stderr
	}
	if !c.LogPlain {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
