// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"
)

// SQLiteResolver handles sqlite://, sqlite: and file: connection strings.
type SQLiteResolver struct{}

// NewSQLiteResolver creates a new SQLite resolver
func NewSQLiteResolver() *SQLiteResolver {
	return &SQLiteResolver{}
}

// Parse extracts the database path. file: URIs are kept intact because the
// driver understands them natively, including their query parameters.
func (r *SQLiteResolver) Parse(dsn string) (*Info, error) {
	info := &Info{Type: DBTypeSQLite, Params: map[string]string{}, Original: dsn}

	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "sqlite://"):
		info.Path = dsn[len("sqlite://"):]
	case strings.HasPrefix(lower, "sqlite:"):
		info.Path = dsn[len("sqlite:"):]
	case strings.HasPrefix(lower, "file:"):
		path, _, _ := strings.Cut(dsn[len("file:"):], "?")
		info.Path = path
	default:
		return nil, NewParseError(dsn, "missing or invalid scheme", "use sqlite://path or file:path")
	}

	if strings.TrimSpace(info.Path) == "" {
		return nil, NewParseError(dsn, "missing database path", "use sqlite://:memory: for an in-memory database")
	}
	return info, nil
}

// Normalize returns the string passed to the SQLite driver.
func (r *SQLiteResolver) Normalize(info *Info) (string, error) {
	if info == nil {
		return "", NewParseError("", "nil DSN info", "")
	}
	if strings.HasPrefix(strings.ToLower(info.Original), "file:") {
		return info.Original, nil
	}
	return info.Path, nil
}
