package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_WritesJSONWithAppField(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("event", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"app":"blueward"`) {
		t.Errorf("expected app field, got %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("expected message, got %s", out)
	}
}

func TestInit_FiltersBelowLevel(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line must be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line must pass: %s", out)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	var first, second bytes.Buffer
	Init(Options{Level: "info", Output: &first})
	log := Init(Options{Level: "debug", Output: &second})

	log.Info().Msg("routed")
	if second.Len() != 0 {
		t.Errorf("second Init must be a no-op, got %s", second.String())
	}
	if !strings.Contains(first.String(), "routed") {
		t.Errorf("expected output on the first writer, got %s", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Error("expected Get to panic before Init")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"  WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
