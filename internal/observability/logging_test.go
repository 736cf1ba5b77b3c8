package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLoggingJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	SetupLoggingTo(&buf, "warn", "json")
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level got %s", zerolog.GlobalLevel())
	}
	buf.Reset()
	log.Warn().Str("provider", "OpenAI").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line: %v (%q)", err, buf.String())
	}
	if line["provider"] != "OpenAI" || line["message"] != "hello" {
		t.Fatalf("unexpected log line %v", line)
	}
}

func TestSetupLoggingBadLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	SetupLoggingTo(&buf, "loud", "console")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info fallback got %s", zerolog.GlobalLevel())
	}
}
