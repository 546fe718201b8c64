// Package db provides database connection utilities for webbase.
//
// This package handles PostgreSQL database connections using GORM. The
// connection string comes from the settings loader: DATABASE_URL when
// set, otherwise the POSTGRES_* parts assembled into a DSN.
//
// # Connection
//
//	database, err := db.Connect(config.Get())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Set LOG_LEVEL=debug for SQL query logging.
package db
