package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hotel_simulation/internal/adapters/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "prod", "info")
	l.Debug().Msg("hidden")
	l.Info().Str("kind", "bar").Msg("component created")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["kind"] != "bar" || entry["message"] != "component created" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected timestamp in %+v", entry)
	}
}

func TestNewLogger_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "prod", "loud")
	l.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at the fallback level: %q", buf.String())
	}
	l.Info().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info should pass: %q", buf.String())
	}
}

func TestNewLogger_DevConsole(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "dev", "debug")
	l.Debug().Msg("day started")
	out := buf.String()
	if !strings.Contains(out, "day started") || strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got %q", out)
	}
}
