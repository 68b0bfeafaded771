// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either MySQL (shared deployments where several
// counting stations work against one catalog) or sqlite (a single station, or
// tests) from the application's configuration.
//
// # Connect
//
// Connect opens the database, tunes the connection pool for the driver and
// pings it with the configured timeout. Callers decide whether a missing
// database is fatal.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect, and
// MissingColumns compares them against the columns a feature expects. The
// catalog audit uses this to report a products table that drifted from the
// model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", []string{"code", "alias"})
package database
