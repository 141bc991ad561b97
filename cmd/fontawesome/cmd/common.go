package cmd

import (
	"fmt"

	"github.com/ideamans/fontawesome/pkg/config"
	"github.com/ideamans/fontawesome/pkg/server"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// loadApp reads the configuration and builds the application around it.
// The returned cleanup closes the ledger store and the log file.
func loadApp(module string) (*server.App, *logging.SimpleLogger, func(), error) {
	bootstrap := logging.NewSimpleLogger(module, logging.LevelWarn, true)
	cfg, _, err := server.LoadConfig(cfgFile, bootstrap)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg, module)
	if err != nil {
		return nil, nil, nil, err
	}

	app, err := server.NewApp(cfg, nil, logger)
	if err != nil {
		_ = logger.Close()
		return nil, nil, nil, err
	}
	return app, logger, func() {
		_ = app.Close()
		_ = logger.Close()
	}, nil
}

func newLogger(cfg *config.Config, module string) (*logging.SimpleLogger, error) {
	logger, err := cfg.Logging.NewLogger(module)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
