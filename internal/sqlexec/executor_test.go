// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tables/cli/internal/dsn"
)

func openMemory(t *testing.T) Executor {
	t.Helper()
	info, err := dsn.Resolve("sqlite://:memory:")
	require.NoError(t, err)
	exec, err := NewOpener(info)(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })
	return exec
}

func TestSQLiteSelectOne(t *testing.T) {
	exec := openMemory(t)

	res, err := exec.Execute(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Columns)
	assert.Equal(t, [][]string{{"1"}}, res.Rows)

	out := res.Render()
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "(1 row)")
}

func TestSQLiteStatePersistsBetweenStatements(t *testing.T) {
	exec := openMemory(t)
	ctx := context.Background()

	res, err := exec.Execute(ctx, "CREATE TABLE t (id INTEGER, name TEXT, note TEXT)")
	require.NoError(t, err)
	assert.Empty(t, res.Columns)
	assert.Equal(t, "OK", res.Render())

	_, err = exec.Execute(ctx, "INSERT INTO t VALUES (1, 'alpha', NULL), (2, 'beta', 'x')")
	require.NoError(t, err)

	res, err = exec.Execute(ctx, "SELECT id, name, note FROM t ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "note"}, res.Columns)
	want := [][]string{{"1", "alpha", "NULL"}, {"2", "beta", "x"}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, res.Render(), "(2 rows)")
}

func TestSQLiteErrorIsReturned(t *testing.T) {
	exec := openMemory(t)

	_, err := exec.Execute(context.Background(), "SELECT * FROM missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestSQLiteBlobRendersAsHex(t *testing.T) {
	exec := openMemory(t)
	ctx := context.Background()

	_, err := exec.Execute(ctx, "CREATE TABLE b (v BLOB)")
	require.NoError(t, err)
	_, err = exec.Execute(ctx, "INSERT INTO b VALUES (x'550e8400e29b41d4a716446655440000'), (x'dead')")
	require.NoError(t, err)

	res, err := exec.Execute(ctx, "SELECT v FROM b ORDER BY length(v)")
	require.NoError(t, err)
	want := [][]string{{`\xdead`}, {`\x550e8400e29b41d4a716446655440000`}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenRejectsUnsupportedType(t *testing.T) {
	_, err := Open(context.Background(), &dsn.Info{Type: dsn.DBTypeMySQL})
	assert.Error(t, err)

	_, err = Open(context.Background(), nil)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		contains []string
		exact    string
	}{
		{name: "command tag", result: Result{CommandTag: "INSERT 0 3"}, exact: "INSERT 0 3"},
		{name: "no tag", result: Result{}, exact: "OK"},
		{
			name:     "empty result set",
			result:   Result{Columns: []string{"id"}},
			contains: []string{"id", "(0 rows)"},
		},
		{
			name:     "aligned rows",
			result:   Result{Columns: []string{"id", "name"}, Rows: [][]string{{"1", "alpha"}, {"22", "b"}}},
			contains: []string{"id | name", "1  | alpha", "22 | b", "(2 rows)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.Render()
			if tt.exact != "" {
				assert.Equal(t, tt.exact, out)
			}
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	id := [16]byte{0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4, 0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "NULL"},
		{name: "string", in: "abc", want: "abc"},
		{name: "int", in: int64(42), want: "42"},
		{name: "bool", in: true, want: "t"},
		{name: "uuid array", in: id, want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "sixteen byte slice", in: id[:], want: `\x550e8400e29b41d4a716446655440000`},
		{name: "bytes", in: []byte{0xde, 0xad}, want: `\xdead`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}
