// Package config provides configuration management for the Fortune service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP bind settings (PORT, static client directory)
//   - Provision: dependency manifest path and installer
//   - Launch: server command used by the bootstrap
//   - Storage: S3/MinIO credentials for the face-image archive
//   - Database: MySQL connection for report persistence
//   - Log: logging level and format
//
// Defaults come from `default` struct tags, bound recursively via
// reflection. Environment variables map section.key to SECTION_KEY; the bare
// PORT variable is additionally bound to server.port because deployment
// platforms inject it under that name.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
