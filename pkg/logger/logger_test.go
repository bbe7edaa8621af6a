package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_WritesJSONWithService(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Service: "freelance-portal", Output: &buf})
	log.Info().Str("role", "client").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["service"] != "freelance-portal" || entry["role"] != "client" || entry["message"] != "hello" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Init(Options{Level: "error", Output: &bytes.Buffer{}})
	second := Init(Options{Level: "trace", Output: &bytes.Buffer{}})
	if first.GetLevel() != zerolog.ErrorLevel || second.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected singleton level error, got %s / %s", first.GetLevel(), second.GetLevel())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
