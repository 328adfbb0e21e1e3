package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateTableSQL renders a CREATE TABLE statement for one relation. Every
// column is a plain TEXT column: spec.md's data model has no typed
// values, only strings.
func CreateTableSQL(r *Relation) string {
	cols := make([]string, len(r.columns))
	for i, c := range r.columns {
		cols[i] = c + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", r.name, strings.Join(cols, ", "))
}

// InsertSQL renders a single-row INSERT statement using the same escaping
// rule the compiler uses for literals (spec.md §4.4 step 8), so values
// loaded through the Store and values bound through a DRC query end up
// escaped identically once they hit the backing engine.
func InsertSQL(r *Relation, row []string) string {
	vals := make([]string, len(row))
	for i, v := range row {
		vals[i] = escapeSQL(v)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.name, strings.Join(r.columns, ", "), strings.Join(vals, ", "))
}

func escapeSQL(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// Replay executes CREATE TABLE + one INSERT per row for every relation in
// s against db. It is the bridge between this package's read-only,
// in-process load and a real backing SQL engine (engine/store's own
// collaborator, e.g. github.com/proullon/ramsql or
// github.com/glebarez/go-sqlite) that the compiler's emitted SQL is
// actually run against.
func (s *Store) Replay(db *sql.DB) error {
	for _, r := range s.Relations() {
		if _, err := db.Exec(CreateTableSQL(r)); err != nil {
			return fmt.Errorf("create table %s: %w", r.name, err)
		}
		for _, row := range r.Rows() {
			if _, err := db.Exec(InsertSQL(r, row)); err != nil {
				return fmt.Errorf("insert into %s: %w", r.name, err)
			}
		}
	}
	return nil
}
