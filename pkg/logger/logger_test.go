package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_TagsEveryLineWithService(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})

	log.Info().Msg("booted")

	line := buf.String()
	if !strings.Contains(line, `"service":"legalsheba-api"`) {
		t.Fatalf("expected service field on log line, got %s", line)
	}
	if !strings.Contains(line, `"message":"booted"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %s", out)
	}
}
