package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := level(tt.in); got != tt.want {
			t.Errorf("level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNoColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"yes", true},
	}
	for _, tt := range tests {
		if got := noColor(tt.in); got != tt.want {
			t.Errorf("noColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithEnv(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithEnv(&buf, "id3-dump", env(map[string]string{
		EnvLevel:   "warn",
		EnvNoColor: "1",
	}))

	log.Info().Msg("hidden")
	log.Warn().Str("path", "a.mp3").Msg("tag rejected")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %q", out)
	}
	for _, want := range []string{"tag rejected", "app=id3-dump", "path=a.mp3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output should not be colored: %q", out)
	}
}
