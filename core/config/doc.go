// Package config provides configuration management for the departure board tools.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each partial configuration as
// `default` struct tags and are registered by reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: bind host, port, document root, browser auto-open
//   - Icons: output directory, brand colour, renderer mode, font search list
//   - Storage: S3/MinIO credentials and bucket for publishing icons
//   - Log: Logging level and format
//
// Environment keys are the upper-cased dotted path with underscores,
// e.g. SERVER_PORT or ICONS_BRAND_COLOR.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
