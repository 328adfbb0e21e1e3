package main

import (
	"flag"
	"fmt"
	"strings"
)

// Config is the CLI's fully-parsed configuration: which backing engine to
// run the compiled SQL against, where to load relations from, what to
// compile, and how to project and bind it.
type Config struct {
	Engine    string
	DataDir   string
	Query     string
	QueryFile string
	Wants     []string
	Bound     map[string]string
	Verbose   bool
}

type boundFlags struct {
	values map[string]string
}

func (b *boundFlags) String() string { return "" }

func (b *boundFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("-bind expects name=value, got %q", s)
	}
	b.values[name] = value
	return nil
}

// parseConfig parses args (excluding the program name) into a Config.
func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("drcquery", flag.ContinueOnError)

	engine := fs.String("engine", "ramsql", "backing SQL engine: ramsql or sqlite")
	dataDir := fs.String("data", "", "directory of tab-delimited relation files")
	query := fs.String("query", "", "DRC query string")
	queryFile := fs.String("query-file", "", "file of DRC queries, one per line, compiled concurrently")
	wants := fs.String("want", "", "comma-separated projection variables")
	verbose := fs.Bool("verbose", false, "enable debug logging")

	bound := &boundFlags{values: make(map[string]string)}
	fs.Var(bound, "bind", "var=value external variable binding (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Engine:    *engine,
		DataDir:   *dataDir,
		Query:     *query,
		QueryFile: *queryFile,
		Bound:     bound.values,
		Verbose:   *verbose,
	}
	if *wants != "" {
		cfg.Wants = strings.Split(*wants, ",")
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("-data is required")
	}
	if cfg.Query == "" && cfg.QueryFile == "" {
		return nil, fmt.Errorf("one of -query or -query-file is required")
	}
	if cfg.Engine != "ramsql" && cfg.Engine != "sqlite" {
		return nil, fmt.Errorf("-engine must be ramsql or sqlite, got %q", cfg.Engine)
	}

	return cfg, nil
}
