// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresExecutor executes statements over a single pooled pgx connection.
type PostgresExecutor struct {
	// Pool is capped at one connection so session state (SET, BEGIN) persists
	// between statements.
	Pool *pgxpool.Pool
}

// OpenPostgres creates the pool and pings the server.
func OpenPostgres(ctx context.Context, connString string) (*PostgresExecutor, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string: %w", err)
	}
	cfg.MaxConns = 1
	cfg.MinConns = 0

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &PostgresExecutor{Pool: pool}, nil
}

// Execute runs sql and collects every row.
func (e *PostgresExecutor) Execute(ctx context.Context, sql string) (*Result, error) {
	rows, err := e.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	res := &Result{Columns: make([]string, len(fds))}
	for i, fd := range fds {
		res.Columns[i] = fd.Name
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, formatRow(vals))
	}
	// Errors from the server often surface only after iteration.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	res.CommandTag = rows.CommandTag().String()
	return res, nil
}

// Close shuts the pool down.
func (e *PostgresExecutor) Close() error {
	e.Pool.Close()
	return nil
}
