package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Tables in insertion order, parents first.
var tables = []string{
	"workouts",
	"workout_exercises",
	"exercise_sets",
	"routines",
	"routine_exercises",
	"custom_exercises",
}

// Dump maps each table name to its rows, every row keyed by column name.
type Dump map[string][]map[string]any

// Backup writes every row of every ratlog table to w as TOML.
func (s *Storage) Backup(ctx context.Context, w io.Writer) error {
	dump := make(Dump, len(tables))

	for _, table := range tables {
		rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
		if err != nil {
			return fmt.Errorf("Failed to query table %s: %w", table, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return fmt.Errorf("Failed to get columns for table %s: %w", table, err)
		}

		tableData := []map[string]any{}
		for rows.Next() {
			values := make([]any, len(cols))
			valuePtrs := make([]any, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("Failed to scan row in table %s: %w", table, err)
			}

			row := make(map[string]any, len(cols))
			for i, col := range cols {
				switch v := values[i].(type) {
				case nil:
					// NULL columns are left out of the row.
				case []byte:
					row[col] = string(v)
				default:
					row[col] = v
				}
			}
			tableData = append(tableData, row)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("Failed to iterate table %s: %w", table, err)
		}

		dump[table] = tableData
	}

	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("Failed to encode TOML: %w", err)
	}
	return nil
}

// Restore replaces the contents of every table present in the TOML read
// from r. Unknown tables are rejected before anything is written.
func (s *Storage) Restore(ctx context.Context, r io.Reader) error {
	var dump Dump
	if _, err := toml.NewDecoder(r).Decode(&dump); err != nil {
		return fmt.Errorf("Failed to decode TOML: %w", err)
	}

	known := make(map[string]bool, len(tables))
	for _, t := range tables {
		known[t] = true
	}
	for table := range dump {
		if !known[table] {
			return fmt.Errorf("unknown table %q in backup", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first when clearing.
	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]
		if _, ok := dump[table]; !ok {
			continue
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("Failed to clear table %s: %w", table, err)
		}
	}

	for _, table := range tables {
		for _, row := range dump[table] {
			columns := make([]string, 0, len(row))
			for col := range row {
				if !isIdentifier(col) {
					return fmt.Errorf("invalid column %q in table %s", col, table)
				}
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]any, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
				table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("Failed to insert into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	s.log.WithField("tables", len(dump)).Info("Database restored from backup")
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}
