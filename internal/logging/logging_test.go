package logging

import "testing"

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"debug json", LevelDebug, FormatJSON},
		{"info text", LevelInfo, FormatText},
		{"warn json", LevelWarn, FormatJSON},
		{"error text", LevelError, FormatText},
		{"unknown level defaults", Level(99), FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Fatal("logger should be initialized")
			}
		})
	}
}

func TestHelpersDoNotPanic(t *testing.T) {
	InitLogger(LevelError, FormatText)
	Debug("debug", "k", "v")
	Info("info", "k", "v")
	Warn("warn", "k", "v")
	Error("error", "k", "v")
	ScanEvent("stdin", 3, 2)
	IndexEvent("session-1", "file.txt", 5)
}
