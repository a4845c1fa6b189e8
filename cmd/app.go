package cmd

import (
	"fmt"

	"ossdisk/core/config"
	"ossdisk/core/disk"
	"ossdisk/core/logger"
	"ossdisk/feature/alioss"
	"ossdisk/feature/s3disk"

	"go.uber.org/zap"
)

// configPath is the directory config.yaml and .env are read from.
var configPath string

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding config.yaml and .env")
}

// bootstrap loads the configuration, builds the logger and registers every driver.
func bootstrap() (*config.Config, *zap.Logger, *disk.Manager, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	mgr := disk.NewManager(cfg.AllDisks(), logg)
	alioss.Register(mgr)
	s3disk.Register(mgr)

	return cfg, logg, mgr, nil
}
