package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &StdLogger{
		logger: log.New(&buf, "", 0),
		level:  LevelDebug,
	}

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{
			name:     "Info",
			fn:       func() { l.Info("translated %d codes", 3) },
			expected: "[INFO] translated 3 codes",
		},
		{
			name:     "Warn",
			fn:       func() { l.Warn("rule %s already applied", "turn-timer-seconds") },
			expected: "[WARN] rule turn-timer-seconds already applied",
		},
		{
			name:     "Error",
			fn:       func() { l.Error("error message") },
			expected: "[ERROR] error message",
		},
		{
			name:     "Debug",
			fn:       func() { l.Debug("debug message") },
			expected: "[DEBUG] debug message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			got := strings.TrimSpace(buf.String())
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStdLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &StdLogger{
		logger: log.New(&buf, "", 0),
		level:  LevelWarn,
	}

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"[WARN] shown", "[ERROR] shown"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		want      Level
		wantError bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "", want: LevelInfo},
		{input: "warning", want: LevelWarn},
		{input: " error ", want: LevelError},
		{input: "loud", want: LevelInfo, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if Default == nil {
		t.Error("Default logger should not be nil")
	}

	Default.Info("test")
}
