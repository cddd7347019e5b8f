// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure the MySQL connection the dictionary tables live
// in; tests and local development use the sqlite driver (":memory:" works).
//
// # Connect
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("running without dictionary persistence", err)
//	}
//
// # Schema inspection
//
// GetTableColumns returns the column layout of a table; the `dictionary
// schema` command uses it to print how the alias tables are defined.
package database
