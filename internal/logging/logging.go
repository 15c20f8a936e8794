// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called so
// library code and tests can always log through it.
var Log = newDiscardLogger()

// Config controls where and how log lines are written.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	// File receives the log. The terminal belongs to the UI, so stdout is
	// only used when File is "-".
	File string `env:"LOG_FILE" envDefault:"dungeonturn.log"`
}

// Init configures Log from cfg. The returned closer releases the log file.
func Init(cfg Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	switch cfg.File {
	case "-":
		Log.SetOutput(os.Stdout)
		return nopCloser{}, nil
	case "":
		Log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	Log.SetOutput(f)
	return f, nil
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
