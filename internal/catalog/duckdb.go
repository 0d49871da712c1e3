// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/gamematch/internal/validation"
)

// DefaultDuckDBTable is read when no table is configured.
const DefaultDuckDBTable = "games"

// DuckDBSource reads Name and Genre from a table in a DuckDB database file.
// Rows are returned in insertion order.
type DuckDBSource struct {
	path  string
	table string
}

// NewDuckDBSource validates the table name and returns a source. The
// database is opened read-only on each Load so an external writer can
// refresh the table between reloads.
func NewDuckDBSource(path, table string) (*DuckDBSource, error) {
	if table == "" {
		table = DefaultDuckDBTable
	}
	if err := validation.ValidateVar(table, "sqlident"); err != nil {
		return nil, fmt.Errorf("invalid duckdb table %q: %w", table, err)
	}
	return &DuckDBSource{path: path, table: table}, nil
}

func (s *DuckDBSource) String() string {
	return "duckdb:" + s.path + "#" + s.table
}

// Load queries the table.
func (s *DuckDBSource) Load(ctx context.Context) ([]Item, error) {
	if s.path == "" || s.path == ":memory:" {
		return nil, errors.New("duckdb catalog source needs a database file")
	}
	connStr := s.path + "?access_mode=read_only&autoinstall_known_extensions=false&autoload_known_extensions=false"

	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open duckdb catalog: %w", err)
	}
	defer db.Close()

	if err := s.checkColumns(ctx, db); err != nil {
		return nil, err
	}

	// Table name is validated as an identifier in NewDuckDBSource.
	query := fmt.Sprintf("SELECT Name, Genre FROM %s ORDER BY rowid", s.table) //nolint:gosec
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query duckdb catalog: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var name, genre sql.NullString
		if err := rows.Scan(&name, &genre); err != nil {
			return nil, fmt.Errorf("scan duckdb catalog row: %w", err)
		}
		items = append(items, Item{Name: name.String, Genre: genre.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate duckdb catalog: %w", err)
	}
	return items, nil
}

// checkColumns confirms the table exists and carries Name and Genre.
// DuckDB identifiers are case-insensitive, so the match is too.
func (s *DuckDBSource) checkColumns(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE lower(table_name) = lower(?) AND table_schema = 'main'",
		s.table)
	if err != nil {
		return fmt.Errorf("describe duckdb table %s: %w", s.table, err)
	}
	defer rows.Close()

	var columns []string
	hasName, hasGenre := false, false
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return fmt.Errorf("scan duckdb column: %w", err)
		}
		columns = append(columns, col)
		hasName = hasName || strings.EqualFold(col, "Name")
		hasGenre = hasGenre || strings.EqualFold(col, "Genre")
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("describe duckdb table %s: %w", s.table, err)
	}

	if len(columns) == 0 {
		return fmt.Errorf("duckdb table %s not found", s.table)
	}
	if !hasName || !hasGenre {
		return fmt.Errorf("%w: table %s has columns %v", ErrMissingColumn, s.table, columns)
	}
	return nil
}
