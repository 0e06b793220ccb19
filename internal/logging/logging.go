// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sdr-params/internal/config"
)

// New returns a logger configured by cfg. When cfg.File is set, output goes to
// that file with size-based rotation; otherwise to stderr.
func New(cfg config.LoggingConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("bad log level: %w", err)
	}

	logger := log.New()
	logger.SetLevel(level)
	logger.SetOutput(output(cfg, os.Stderr))

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("bad log format: %s", cfg.Format)
	}

	return logger, nil
}

func output(cfg config.LoggingConfig, fallback io.Writer) io.Writer {
	if cfg.File == "" {
		return fallback
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
}

// Close releases the logger's file, if it writes to one
func Close(logger *log.Logger) error {
	if c, ok := logger.Out.(io.Closer); ok && logger.Out != os.Stderr && logger.Out != os.Stdout {
		return c.Close()
	}
	return nil
}
