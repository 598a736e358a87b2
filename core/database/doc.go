// Package database manages the optional MySQL connection used for report
// persistence.
//
// The connection is established with GORM. Persistence is strictly optional:
// when the database is disabled or unreachable, the service logs a warning
// and keeps serving, and composed reports are simply not stored.
package database
