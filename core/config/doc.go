// Package config provides configuration management for the importer.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file via godotenv. Defaults come from the `default` struct tags of each
// section and keys map to variables by upper-casing and replacing dots with
// underscores (database.driver -> DATABASE_DRIVER).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key for the serve command
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and bucket for payloads and reports
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Driver)
package config
