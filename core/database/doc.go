// Package database handles database connections for the export feature.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database with sane pool
// limits and DSN-level timeouts, and verifies it with a ping before returning.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
package database
