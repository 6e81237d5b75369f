// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Result is a query result with every value already converted to text.
type Result struct {
	Columns []string
	Rows    [][]string
	// CommandTag is set for statements without a result set, e.g. "INSERT 0 1".
	CommandTag string
}

// Render formats the result as a plain aligned table followed by a row count.
// Statements without columns render as their command tag.
func (r *Result) Render() string {
	if len(r.Columns) == 0 {
		if r.CommandTag == "" {
			return "OK"
		}
		return r.CommandTag
	}

	data := make([][]string, 0, len(r.Rows)+1)
	data = append(data, r.Columns)
	data = append(data, r.Rows...)

	table, err := pterm.TablePrinter{
		HasHeader:          true,
		Separator:          " | ",
		HeaderRowSeparator: "-",
		LeftAlignment:      true,
		Data:               data,
	}.Srender()
	if err != nil {
		table = strings.Join(r.Columns, " | ")
	}

	return strings.TrimRight(table, "\n") + "\n" + rowCount(len(r.Rows))
}

func rowCount(n int) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}

func formatRow(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatValue(v)
	}
	return out
}

// formatValue converts a driver value to display text. UUIDs arrive from pgx
// as [16]byte and are printed in canonical form. Byte slices are always
// binary data and print as hex, whatever their length.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case [16]byte:
		return uuid.UUID(v).String()
	case []byte:
		return fmt.Sprintf("\\x%x", v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case bool:
		if v {
			return "t"
		}
		return "f"
	case driver.Valuer:
		inner, err := v.Value()
		if err != nil {
			return fmt.Sprint(val)
		}
		if _, again := inner.(driver.Valuer); again {
			return fmt.Sprint(inner)
		}
		return formatValue(inner)
	default:
		return fmt.Sprint(v)
	}
}
