// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlexec runs SQL text against a single database connection and
// normalizes the result into printable rows.
//
// Two backends are supported:
//   - PostgreSQL through a pgx pool capped at one connection
//   - SQLite through database/sql with the pure Go modernc driver
package sqlexec

import (
	"context"
	"fmt"

	"tables/cli/internal/dsn"
)

// Executor runs one statement at a time. Implementations are not safe for
// concurrent Execute calls; the worker owns its executor exclusively.
type Executor interface {
	// Execute runs sql and returns its rows, or the command tag for
	// statements that produce none.
	Execute(ctx context.Context, sql string) (*Result, error)
	// Close releases the underlying connection.
	Close() error
}

// Opener establishes a connection on demand.
type Opener func(ctx context.Context) (Executor, error)

// NewOpener returns an Opener for a resolved DSN.
func NewOpener(info *dsn.Info) Opener {
	return func(ctx context.Context) (Executor, error) {
		return Open(ctx, info)
	}
}

// Open connects to the database described by info and verifies the
// connection with a ping.
func Open(ctx context.Context, info *dsn.Info) (Executor, error) {
	if info == nil {
		return nil, fmt.Errorf("no database configured")
	}
	switch info.Type {
	case dsn.DBTypePostgreSQL:
		return OpenPostgres(ctx, info.Normalized)
	case dsn.DBTypeSQLite:
		return OpenSQLite(ctx, info.Normalized)
	default:
		return nil, fmt.Errorf("unsupported database type %q", info.Type)
	}
}
