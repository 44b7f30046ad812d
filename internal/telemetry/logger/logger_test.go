package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("sale created", "sale_id", "vnt-01", "imei", "123456789012345")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "sale created" {
		t.Errorf("msg = %v, want 'sale created'", entry["msg"])
	}
	if entry["sale_id"] != "vnt-01" {
		t.Errorf("sale_id = %v, want vnt-01", entry["sale_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info message should be suppressed at warn level, got %q", buf.String())
	}

	log.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn message should be written at warn level")
	}
}

func TestRedaction(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"password key", "password", redactedValue},
		{"token key", "session_token", redactedValue},
		{"plain key", "customer", "Juan García"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: "info", Format: "json", Output: &buf})
			log.Info("login attempt", tt.key, "Juan García")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if entry[tt.key] != tt.want {
				t.Errorf("attr %q = %v, want %q", tt.key, entry[tt.key], tt.want)
			}
		})
	}
}

func TestRedactionInGroups(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("request", slog.Group("auth", slog.String("password", "admin123")))

	if strings.Contains(buf.String(), "admin123") {
		t.Errorf("grouped credential leaked into output: %s", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "error", Format: "text", Output: &buf})

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatal("info should be hidden at error level")
	}

	SetLevel("debug")
	defer SetLevel("info")

	log.Info("shown")
	if buf.Len() == 0 {
		t.Error("info should be shown after SetLevel(debug)")
	}
}
