// Package config provides configuration management for the warehouse counter.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults come from the `default` struct tags of each package's own
// Config, registered by reflection so every key is also reachable through
// the environment (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, body limit, websocket stations
//   - Database: MySQL or sqlite connection details
//   - Storage: S3/MinIO credentials, bucket and export retention
//   - Redis: optional change broker between instances
//   - Scanner: keystroke decoder timings
//   - Restock: invoice restocking pacing
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
