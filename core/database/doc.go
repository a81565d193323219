// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// pings the server before returning. SQLite connections are capped at one open
// connection so that ":memory:" databases survive across queries.
//
// # Schema Inspection
//
// GetTableColumns and InspectTables report the columns of existing tables
// through GORM's migrator, independent of the dialect. The migrate command
// uses them to print the resulting catalog schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "games")
package database
