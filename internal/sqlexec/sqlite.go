// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteExecutor executes statements against a SQLite database file or an
// in-memory database.
type SQLiteExecutor struct {
	DB *sql.DB
}

// OpenSQLite opens path with the modernc driver. A single open connection is
// kept so ":memory:" databases survive between statements.
func OpenSQLite(ctx context.Context, path string) (*SQLiteExecutor, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &SQLiteExecutor{DB: db}, nil
}

// Execute runs sql through QueryContext, which also executes statements that
// return no rows.
func (e *SQLiteExecutor) Execute(ctx context.Context, query string) (*Result, error) {
	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	res := &Result{Columns: cols}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, formatRow(vals))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		res.CommandTag = "OK"
	}
	return res, nil
}

// Close closes the database handle.
func (e *SQLiteExecutor) Close() error {
	return e.DB.Close()
}
