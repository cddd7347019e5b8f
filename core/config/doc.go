// Package config provides configuration management for floorops.
//
// It uses Viper to load settings from environment variables and an optional
// .env file (via godotenv). Defaults come from `default:` struct tags on the
// per-package partial configs.
//
// # Configuration structure
//
//   - Server: HTTP port, API key, upload limit
//   - Database: MySQL connection for the dictionary tables
//   - Storage: S3/MinIO credentials and the upload-archive bucket
//   - Log: logging level and format
//   - Cleaning: session TTL, dictionary cache TTL, search debounce
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
