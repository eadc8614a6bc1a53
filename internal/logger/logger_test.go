package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func fileConfig(path, level string) Config {
	return Config{
		Level:      level,
		File:       path,
		MaxSizeMB:  10,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "flightsim.log")

	// 1MB is the smallest size lumberjack rotates at
	cfg := fileConfig(logFile, "debug")
	cfg.MaxSizeMB = 1
	cfg.MaxBackups = 2
	if err := Init(cfg); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 8000; i++ {
		Info("frame", zap.Int("n", i), zap.String("pad", longMessage))
	}
	Sync()

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	var rotated []string
	foundMain := false
	for _, f := range files {
		switch {
		case f.Name() == "flightsim.log":
			foundMain = true
		case strings.HasPrefix(f.Name(), "flightsim-"):
			rotated = append(rotated, f.Name())
		}
	}

	if !foundMain {
		t.Error("main log file does not exist")
	}
	if len(rotated) == 0 {
		t.Errorf("expected rotated files, found %v", files)
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level string
		want  []string
	}{
		{"error", []string{"ERROR"}},
		{"warn", []string{"WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"bogus", []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			if err := Init(fileConfig(logFile, tt.level)); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			f, err := os.Open(logFile)
			if err != nil {
				t.Fatalf("failed to open log file: %v", err)
			}
			defer f.Close()

			var got []string
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				var entry struct {
					Level string `json:"level"`
					Msg   string `json:"msg"`
				}
				if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
					t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
				}
				got = append(got, entry.Level)
			}

			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("levels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNoOutputsDiscards(t *testing.T) {
	if err := Init(Config{Level: "debug"}); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	// Must not panic with an empty tee
	Info("nowhere")
	Sync()
}

func TestCallerIsLoggingSite(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	if err := Init(fileConfig(logFile, "debug")); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("config", zap.Any("config", map[string]int{"width": 800}))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	var entry struct {
		Caller string         `json:"caller"`
		Config map[string]int `json:"config"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log %q is not JSON: %v", data, err)
	}

	if !strings.HasPrefix(entry.Caller, "logger/logger_test.go:") {
		t.Errorf("caller = %q, want the test file", entry.Caller)
	}
	if entry.Config["width"] != 800 {
		t.Errorf("config field = %v, want width 800", entry.Config)
	}
}
