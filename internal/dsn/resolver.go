// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"
)

// DetectDBType detects the database type from a DSN string
func DetectDBType(dsn string) DBType {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DBTypePostgreSQL
	case strings.HasPrefix(lower, "sqlite:"), strings.HasPrefix(lower, "file:"):
		return DBTypeSQLite
	case strings.HasPrefix(lower, "mysql://"):
		return DBTypeMySQL
	case strings.HasPrefix(lower, "oracle://"):
		return DBTypeOracle
	}
	return DBTypeUnknown
}

func resolverFor(dsn string) (Resolver, error) {
	switch DetectDBType(dsn) {
	case DBTypePostgreSQL:
		return NewPostgreSQLResolver(), nil
	case DBTypeSQLite:
		return NewSQLiteResolver(), nil
	case DBTypeMySQL:
		return nil, NewParseError(dsn, "MySQL is not supported", "use PostgreSQL or SQLite")
	case DBTypeOracle:
		return nil, NewParseError(dsn, "Oracle is not supported", "use PostgreSQL or SQLite")
	default:
		return nil, NewParseError(dsn, "unknown database type", "use postgres://, sqlite:// or file:")
	}
}

// Resolve parses dsn and fills in the driver connection string.
// This is the main entry point for DSN parsing
func Resolve(dsn string) (*Info, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, NewParseError(dsn, "empty DSN", "provide a valid database connection string")
	}

	resolver, err := resolverFor(dsn)
	if err != nil {
		return nil, err
	}
	info, err := resolver.Parse(dsn)
	if err != nil {
		return nil, err
	}
	info.Normalized, err = resolver.Normalize(info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Parse returns the normalized connection string for dsn.
func Parse(dsn string) (string, error) {
	info, err := Resolve(dsn)
	if err != nil {
		return "", err
	}
	return info.Normalized, nil
}
