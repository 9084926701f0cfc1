package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{raw: "", want: zerolog.InfoLevel, wantOK: false},
		{raw: "trace", want: zerolog.TraceLevel, wantOK: true},
		{raw: " DEBUG ", want: zerolog.DebugLevel, wantOK: true},
		{raw: "info", want: zerolog.InfoLevel, wantOK: true},
		{raw: "Warning", want: zerolog.WarnLevel, wantOK: true},
		{raw: "error", want: zerolog.ErrorLevel, wantOK: true},
		{raw: "off", want: zerolog.Disabled, wantOK: true},
		{raw: "verbose", want: zerolog.InfoLevel, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()

	var buf bytes.Buffer
	logger := initLogger("mudra", &buf, "warn", true)

	logger.Info().Msg("hidden")
	log.Warn().Str("camera", "0").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "app=mudra") {
		t.Errorf("expected warn message tagged with app, got %q", out)
	}
}
