package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Info().Msg("dropped")
	Warn().Str("examID", "7").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at warn level, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if entry["message"] != "kept" || entry["examID"] != "7" || entry["level"] != "warn" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestConfigureWritesRotatingFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	Configure(Config{Level: InfoLevel, Output: &buf, File: FileConfig{Path: path, MaxSizeMB: 1}})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Info().Msg("to both sinks")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to both sinks") || !strings.Contains(buf.String(), "to both sinks") {
		t.Fatalf("message missing from a sink: file=%q console=%q", data, buf.String())
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Fatalf("expected info, got %s", got)
	}
}
