// Package config provides configuration management for ossdisk.
//
// It utilizes Viper for loading configuration from an optional config.yaml, a .env file
// and environment variables, in increasing order of precedence.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit, required directories)
//   - Storage: the default disk (driver, credentials, endpoint, bucket, prefix)
//   - Log: Logging level and format
//   - Disks: additional named disks, each shaped like Storage
//
// Every key maps to an environment variable by upper-casing it and replacing dots with
// underscores, e.g. STORAGE_BUCKET or DISKS_BACKUP_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mgr := disk.NewManager(cfg.AllDisks(), logger)
package config
