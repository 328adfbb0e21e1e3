// Command drcquery is the ambient CLI shell around the DRC compiler: it
// loads relations from tab-delimited files, compiles one or more DRC
// queries against the resulting schema, runs the emitted SQL against a
// real backing engine, and prints the rows. None of this is part of the
// core the spec describes (spec.md §1 calls all of it "external
// collaborators") — it exists so the repository is runnable end to end.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/proullon/ramsql/driver"
	"golang.org/x/sync/errgroup"

	"github.com/drcalc/drcalc"
	"github.com/drcalc/drcalc/engine/log"
	"github.com/drcalc/drcalc/engine/store"
	"github.com/drcalc/drcalc/internal/present"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "drcquery:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	st, err := store.LoadDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	schema := st.Schema()

	driverName := "ramsql"
	if cfg.Engine == "sqlite" {
		driverName = "sqlite"
	}
	db, err := sql.Open(driverName, fmt.Sprintf("drcquery-%d", time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Engine, err)
	}
	defer db.Close()

	if err := st.Replay(db); err != nil {
		return fmt.Errorf("replay data into %s: %w", cfg.Engine, err)
	}

	queries, err := queriesFor(cfg)
	if err != nil {
		return err
	}

	results := make([]string, len(queries))
	g, _ := errgroup.WithContext(context.Background())
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			compiled, err := drcalc.Compile(q, schema, cfg.Bound, cfg.Wants)
			if err != nil {
				return fmt.Errorf("compile %q: %w", q, err)
			}
			results[i] = compiled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := present.NewPrinter(os.Stdout, os.Stdout.Fd())
	for _, compiled := range results {
		start := time.Now()
		columns, rows, err := execute(db, compiled)
		if err != nil {
			return fmt.Errorf("execute: %w", err)
		}
		printer.Rows(columns, rows, time.Since(start).String())
	}

	return nil
}

func queriesFor(cfg *Config) ([]string, error) {
	if cfg.Query != "" {
		return []string{cfg.Query}, nil
	}
	return readLines(cfg.QueryFile)
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			line := string(data[start:i])
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			if line != "" {
				lines = append(lines, line)
			}
			start = i + 1
		}
	}
	if start < len(data) {
		if line := string(data[start:]); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func execute(db *sql.DB, query string) ([]string, [][]string, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(columns))
		for i, v := range raw {
			row[i] = fmt.Sprintf("%v", v)
		}
		out = append(out, row)
	}
	return columns, out, rows.Err()
}
