// Package config provides configuration management for the Stack Manager.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and an optional config.yaml.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Immich: Photo Service URL, API key, page size, timeout and request pacing
//   - Server: HTTP server settings (port, API key, schedule)
//   - Storage: S3/MinIO credentials and bucket settings for plan export
//   - Log: Logging level and format
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores, so immich.api_key is read from IMMICH_API_KEY.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Immich.BaseURL)
package config
