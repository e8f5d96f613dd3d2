// Package config provides configuration management for snapshot-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details (database dataset driver)
//   - Storage: S3/MinIO credentials and bucket settings (bucket source)
//   - Log: Logging level and format
//   - Source: raw snapshot discovery (driver, directory, file prefix)
//   - Dataset: persisted dataset store (driver, path)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Prefix)
package config
