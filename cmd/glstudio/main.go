// Package main is the entry point for the GLStudio exercises.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/app"
	"github.com/Faultbox/glstudio/internal/config"
	"github.com/Faultbox/glstudio/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== GLStudio ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func initLogger(cfg config.LoggingConfig) error {
	opts := logger.Options{Level: cfg.Level, Console: cfg.Console}
	if cfg.LogFile != "" {
		opts.File = logger.FileConfig{
			Path:       cfg.LogFile,
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	}
	return logger.Init(opts)
}
