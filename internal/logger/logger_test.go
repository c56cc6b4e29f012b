package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func parseLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewWithWriterFieldNames(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info("servidor iniciado")

	entry := parseLine(t, &buf)
	if entry["message"] != "servidor iniciado" {
		t.Errorf("Expected message field, got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level info, got %v", entry["level"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("Expected timestamp field")
	}
	// slog default keys must have been renamed
	for _, key := range []string{"msg", "time"} {
		if _, ok := entry[key]; ok {
			t.Errorf("Unexpected key %q in log line", key)
		}
	}
}

func TestLevelNames(t *testing.T) {
	tests := []struct {
		name string
		emit func(*Logger)
		want string
	}{
		{"debug", func(l *Logger) { l.Debug("x") }, "debug"},
		{"info", func(l *Logger) { l.Info("x") }, "info"},
		{"warn", func(l *Logger) { l.Warn("x") }, "warning"},
		{"error", func(l *Logger) { l.Error("x") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter("debug", &buf)

			tt.emit(log)

			if got := parseLine(t, &buf)["level"]; got != tt.want {
				t.Errorf("Expected level %q, got %v", tt.want, got)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		emit       func(*Logger)
		suppressed bool
	}{
		{"warn logger drops info", "warn", func(l *Logger) { l.Info("x") }, true},
		{"warn logger keeps warn", "warn", func(l *Logger) { l.Warn("x") }, false},
		{"error logger drops warn", "error", func(l *Logger) { l.Warn("x") }, true},
		{"default logger drops debug", "", func(l *Logger) { l.Debug("x") }, true},
		{"default logger keeps info", "", func(l *Logger) { l.Info("x") }, false},
		{"debug logger keeps debug", "debug", func(l *Logger) { l.Debug("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			tt.emit(log)

			if got := buf.Len() == 0; got != tt.suppressed {
				t.Errorf("Expected suppressed=%v, buffer: %q", tt.suppressed, buf.String())
			}
		})
	}
}

func TestWithModule(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithModule("chat").Info("mensagem recebida")

	if got := parseLine(t, &buf)["module"]; got != "chat" {
		t.Errorf("Expected module chat, got %v", got)
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithRequestID("req-42").Info("x")

	if got := parseLine(t, &buf)["request_id"]; got != "req-42" {
		t.Errorf("Expected request_id req-42, got %v", got)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithError(errors.New("conexão recusada")).Error("falha no backend")

	if got := parseLine(t, &buf)["error"]; got != "conexão recusada" {
		t.Errorf("Expected error field, got %v", got)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithFields(map[string]any{"room": "315", "floor": "superior"}).Info("x")

	entry := parseLine(t, &buf)
	if entry["room"] != "315" || entry["floor"] != "superior" {
		t.Errorf("Expected room and floor fields, got %v", entry)
	}
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.WithField("route", "cache").Info("x")

	if got := parseLine(t, &buf)["route"]; got != "cache" {
		t.Errorf("Expected route cache, got %v", got)
	}
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Infof("sala %d aquecida em %s", 315, "12ms")

	if got := parseLine(t, &buf)["message"]; got != "sala 315 aquecida em 12ms" {
		t.Errorf("Expected formatted message, got %v", got)
	}
}
