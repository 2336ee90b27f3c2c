// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Log: Logging level and format
//   - Sage: Sage dialect transform settings
//   - Replink: Replink dialect transform settings (enable threshold, price tier)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
