package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matillion/members-fetcher/internal/config"
	"github.com/matillion/members-fetcher/internal/discord"
	"github.com/matillion/members-fetcher/internal/export"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the components shared by every subcommand
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   *discord.Client
	exporter *export.Exporter
}

// newApp loads configuration, prepares the output directory and logs in
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return nil, err
	}

	logger.Info("Creating Discord client")
	client, err := discord.NewClient(discord.Config{Token: cfg.Token}, logger)
	if err != nil {
		return nil, err
	}
	if err := client.Authenticate(ctx); err != nil {
		return nil, discord.WrapError(logger, "authenticate", err)
	}

	exporter := export.NewExporter(client, export.NewFileRowWriter(cfg.OutputPath), logger, export.Options{
		SidebarScrapeDelay: cfg.SidebarScrapeDelay,
		MemberScrapeDelay:  cfg.MemberScrapeDelay,
	})

	return &app{cfg: cfg, logger: logger, client: client, exporter: exporter}, nil
}

// initLogger logs JSON to stderr and, when logDir is set, to a daily file
func initLogger(level string, logDir string) (*zap.Logger, error) {
	logLevel := interpretLogLevel(level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			logLevel,
		),
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFileName := fmt.Sprintf("membersfetcher-%s.log", time.Now().Format("2006-01-02"))
		logFile, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(logFile),
			logLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func interpretLogLevel(level string) zapcore.Level {
	var logLevel zapcore.Level

	switch level {
	case "debug":
		logLevel = zapcore.DebugLevel
	case "warn":
		logLevel = zapcore.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	default:
		logLevel = zapcore.InfoLevel
	}
	return logLevel
}
