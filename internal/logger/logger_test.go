package logger

import (
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want zerolog.Level
	}{
		{name: "trace", in: "trace", want: zerolog.TraceLevel},
		{name: "debug", in: "debug", want: zerolog.DebugLevel},
		{name: "info", in: "info", want: zerolog.InfoLevel},
		{name: "warn", in: "warn", want: zerolog.WarnLevel},
		{name: "warning alias", in: "warning", want: zerolog.WarnLevel},
		{name: "error", in: "error", want: zerolog.ErrorLevel},
		{name: "err alias", in: "ERR", want: zerolog.ErrorLevel},
		{name: "fatal", in: "fatal", want: zerolog.FatalLevel},
		{name: "mixed case", in: "Debug", want: zerolog.DebugLevel},
		{name: "empty falls back to info", in: "", want: zerolog.InfoLevel},
		{name: "unknown falls back to info", in: "verbose", want: zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseLevel(tc.in); got != tc.want {
				t.Fatalf("parseLevel(%q)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("STOCKPULSE_TEST_LEVEL", "debug")
	if v := getenv("STOCKPULSE_TEST_LEVEL", "info"); v != "debug" {
		t.Fatalf("set variable: got %q", v)
	}
	if v := getenv("STOCKPULSE_TEST_MISSING", "info"); v != "info" {
		t.Fatalf("missing variable: got %q", v)
	}

	// An empty value counts as unset.
	t.Setenv("STOCKPULSE_TEST_EMPTY", "")
	if v := getenv("STOCKPULSE_TEST_EMPTY", "info"); v != "info" {
		t.Fatalf("empty variable: got %q", v)
	}
}

func TestInit_HonorsLevelAndPretty(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_PRETTY", "false")
	Init()
	if got := L().GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("level %v, want warn", got)
	}

	// Pretty mode swaps the writer; the level must survive.
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if got := L().GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("level %v, want debug", got)
	}
}

func TestL_LazyInit(t *testing.T) {
	_ = os.Unsetenv("LOG_LEVEL")
	_ = os.Unsetenv("LOG_PRETTY")

	// Simulate a caller that never ran Init: a NoLevel base must trigger it.
	base = zerolog.New(io.Discard).Level(zerolog.NoLevel)
	lg := L()
	if lg == nil {
		t.Fatalf("L() returned nil")
	}
	if lg.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("lazy init level %v, want info", lg.GetLevel())
	}
}
