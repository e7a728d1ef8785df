package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matillion/members-fetcher/internal/directory"
	"github.com/matillion/members-fetcher/internal/export"
	"go.uber.org/zap/zapcore"
)

func TestInterpretLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := interpretLogLevel(tt.level); got != tt.want {
				t.Errorf("interpretLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestInitLogger_WritesDailyFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := initLogger("debug", logDir)
	if err != nil {
		t.Fatalf("initLogger failed: %v", err)
	}
	logger.Info("hello")
	logger.Sync()

	name := "membersfetcher-" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(logDir, name))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file = %q, want the logged message", data)
	}
	if !strings.Contains(string(data), `"timestamp"`) {
		t.Errorf("log file = %q, want a timestamp key", data)
	}
}

func TestInitLogger_NoLogDir(t *testing.T) {
	logger, err := initLogger("info", "")
	if err != nil {
		t.Fatalf("initLogger failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled at info level")
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, export.Result{
		Guild:   directory.Guild{ID: 1, Name: "Test Server"},
		File:    export.FileRef{Path: "out/report.csv", Bytes: 128},
		Members: 4,
		Elapsed: 1234 * time.Millisecond,
	})

	want := "Successfully fetched 4 member.s from \"Test Server\" in 1.23 seconds.\n" +
		"Wrote out/report.csv (128 bytes)\n"
	if buf.String() != want {
		t.Errorf("printResult() = %q, want %q", buf.String(), want)
	}
}

func TestExportCommand_RejectsBadArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "accepts between 1 and 2 arg(s)"},
		{"too many args", []string{"1", "a", "b"}, "accepts between 1 and 2 arg(s)"},
		{"non numeric guild", []string{"general"}, "invalid guild id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := ""
			cmd := newExportCommand(&configPath)
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
