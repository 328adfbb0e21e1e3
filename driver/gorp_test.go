package driver

import (
	"testing"

	"github.com/go-gorp/gorp"

	"github.com/drcalc/drcalc"
)

// TestCompiledSQLThroughGorp runs compiled DRC output through gorp's
// DbMap.Select against glebarez/go-sqlite: SQLite's documented fallback of
// treating an unmatched double-quoted token as a string literal (rather
// than a column identifier) is what makes this spec's double-quote
// escaping policy runnable here, same as it is through ramsql directly.
func TestCompiledSQLThroughGorp(t *testing.T) {
	db, schema := universitySchema(t, "TestCompiledSQLThroughGorp", "sqlite")

	dbmap := &gorp.DbMap{Db: db, Dialect: gorp.SqliteDialect{}}

	compiled, err := drcalc.Compile(`student(S,*) && !registered(S,"proglang1")`, schema, nil, []string{"S"})
	if err != nil {
		t.Fatalf("compile: %s", err)
	}

	type studentID struct {
		S string
	}
	var results []studentID
	if _, err := dbmap.Select(&results, compiled); err != nil {
		t.Fatalf("gorp select: %s", err)
	}
	if len(results) != 1 || results[0].S != "bob" {
		t.Fatalf("expected only bob, got %v", results)
	}
}
