package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rulegate/ruleset"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	var catalog *ruleset.Catalog
	if cfg.RulesDir != "" {
		catalog, err = ruleset.Load(osfs.New(cfg.RulesDir), ".")
		if err != nil {
			logger.Fatal("failed to load rule presets", zap.Error(err))
		}

		logger.Info("rule presets loaded",
			zap.Int("count", len(catalog.Presets())),
			zap.String("dir", cfg.RulesDir),
		)
	}

	srv, err := newServer(cfg.Addr, logger, catalog, newMetrics())
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	if err := srv.stop(); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
}

func initLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
