// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package dsn recognises and normalises database connection strings so the
// query worker can hand them to the right driver.
package dsn

import "fmt"

// DBType represents the type of database
type DBType string

const (
	DBTypePostgreSQL DBType = "postgresql"
	DBTypeSQLite     DBType = "sqlite"
	DBTypeMySQL      DBType = "mysql"
	DBTypeOracle     DBType = "oracle"
	DBTypeUnknown    DBType = "unknown"
)

// Info contains parsed information from a DSN string
type Info struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// Path is the database file for SQLite; ":memory:" is allowed.
	Path     string
	Params   map[string]string
	Original string
	// Normalized is the string handed to the driver.
	Normalized string
}

// Name is a short human label for the target database.
func (i *Info) Name() string {
	if i.Type == DBTypeSQLite {
		return i.Path
	}
	return i.Database
}

// Resolver is an interface for database-specific DSN resolution
type Resolver interface {
	// Parse parses a DSN string into its parts
	Parse(dsn string) (*Info, error)

	// Normalize converts parsed info into the driver connection string
	Normalize(info *Info) (string, error)
}

// ParseError represents an error that occurred during DSN parsing
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid DSN format: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid DSN format: %s", e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}
