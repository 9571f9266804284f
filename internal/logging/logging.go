// Package logging builds the console logger used by the command-line tools.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment overrides.
const (
	EnvLevel   = "ID3DISSECT_LOG_LEVEL"
	EnvNoColor = "ID3DISSECT_LOG_NOCOLOR"
)

// New returns a console logger writing to out, tagged with app. The level
// defaults to info and can be raised or lowered through EnvLevel.
func New(out io.Writer, app string) zerolog.Logger {
	return NewWithEnv(out, app, os.Getenv)
}

// NewWithEnv is New with an explicit environment lookup.
func NewWithEnv(out io.Writer, app string, getenv func(string) string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor(getenv(EnvNoColor)),
	}
	return zerolog.New(output).
		Level(level(getenv(EnvLevel))).
		With().Timestamp().Str("app", app).
		Logger()
}

func level(s string) zerolog.Level {
	s = strings.TrimSpace(s)
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func noColor(s string) bool {
	if s == "" {
		return false
	}
	v, err := strconv.ParseBool(s)
	return err != nil || v
}
