package tableio

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/haystack/internal/table"
)

// loadSQLite reads every row of one table from a SQLite database.
// The database is opened read-only; SQL types map onto table Values.
func loadSQLite(ctx context.Context, src Source) (*table.Table, error) {
	db, err := openReadOnly(src.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	name := src.Table
	if name == "" {
		name, err = firstTable(ctx, db)
		if err != nil {
			return nil, err
		}
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var data [][]table.Value
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(data), err)
		}

		row := make([]table.Value, len(columns))
		for i, v := range raw {
			row[i] = table.FromAny(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return table.New(headerNames(columns), data)
}

// openReadOnly opens a SQLite file without creating it and without allowing
// writes.
func openReadOnly(path string) (*sql.DB, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute %q: %w", "PRAGMA query_only = ON", err)
	}

	return db, nil
}

func firstTable(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	err := db.QueryRowContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
		LIMIT 1
	`).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrNoTable
	}
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	return name, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
