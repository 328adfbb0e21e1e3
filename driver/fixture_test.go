// Package driver runs the compiler's output against real backing SQL
// engines end to end — the integration layer the in-process
// engine/analyzer tests can't cover, because those only check the
// emitted SQL text, never that a real engine accepts and executes it.
package driver

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/proullon/ramsql/driver"

	"github.com/drcalc/drcalc/engine/analyzer"
	"github.com/drcalc/drcalc/engine/store"
)

// universitySchema mirrors the schema spec.md §8's scenarios are written
// against: student and teacher share a shape, immatriculated and
// registered each link a student to a year or a lecture.
func universitySchema(t *testing.T, dbName string, driverName string) (*sql.DB, analyzer.Schema) {
	t.Helper()

	st := store.NewStore()
	mustCreate := func(name string, columns []string, rows ...[]string) {
		rel, err := st.CreateRelation(name, columns)
		if err != nil {
			t.Fatalf("create relation %s: %s", name, err)
		}
		for _, row := range rows {
			if err := rel.AddRow(row); err != nil {
				t.Fatalf("add row to %s: %s", name, err)
			}
		}
	}

	mustCreate("student", []string{"id", "name"},
		[]string{"alice", "Alice"},
		[]string{"bob", "Bob"},
	)
	mustCreate("teacher", []string{"id", "name"},
		[]string{"alice", "Alice"},
	)
	mustCreate("immatriculated", []string{"student_id", "year"},
		[]string{"alice", "2016"},
		[]string{"bob", "2017"},
	)
	mustCreate("lecture", []string{"id", "title"},
		[]string{"proglang1", "Programming Languages"},
		[]string{"proglang2", "Advanced Programming Languages"},
	)
	mustCreate("registered", []string{"student_id", "lecture_id"},
		[]string{"alice", "proglang1"},
		[]string{"bob", "proglang2"},
	)

	db, err := sql.Open(driverName, dbName)
	if err != nil {
		t.Fatalf("open %s: %s", driverName, err)
	}
	t.Cleanup(func() { db.Close() })

	if err := st.Replay(db); err != nil {
		t.Fatalf("replay into %s: %s", driverName, err)
	}

	return db, st.Schema()
}

func queryRows(t *testing.T, db *sql.DB, compiled string) [][]string {
	t.Helper()
	rows, err := db.Query(compiled)
	if err != nil {
		t.Fatalf("query %q: %s", compiled, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		t.Fatalf("columns: %s", err)
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			t.Fatalf("scan: %s", err)
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			row[i] = toString(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %s", err)
	}
	return out
}

func toString(v any) string {
	switch v := v.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
