// Package store is the in-memory relational database the DRC compiler's
// output schema comes from, populated by loading tab/whitespace-delimited
// text. It is adapted from the teacher's engine/agnostic relation store:
// the attribute-indexed Relation shape and the map-of-relations Engine
// shape survive, but indexing, foreign keys, transactions and the SQL
// execution pipeline do not — this domain is read-only, constraint-free,
// and single-schema, so none of that machinery has anywhere to run.
package store

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/drcalc/drcalc/engine/analyzer"
)

// Relation holds every row loaded for one named relation, in insertion
// order, alongside the ordered column names that give the relation its
// arity.
type Relation struct {
	name     string
	columns  []string
	colIndex map[string]int
	rows     *list.List

	sync.RWMutex
}

// NewRelation creates an empty Relation with the given ordered columns.
func NewRelation(name string, columns []string) *Relation {
	r := &Relation{
		name:     name,
		columns:  columns,
		colIndex: make(map[string]int, len(columns)),
		rows:     list.New(),
	}
	for i, c := range columns {
		r.colIndex[c] = i
	}
	return r
}

func (r *Relation) Name() string { return r.name }

func (r *Relation) Columns() []string { return r.columns }

func (r *Relation) Arity() int { return len(r.columns) }

// AddRow appends one tuple of string values, which must match the
// relation's arity.
func (r *Relation) AddRow(values []string) error {
	if len(values) != len(r.columns) {
		return fmt.Errorf("relation %s: expected %d values, got %d", r.name, len(r.columns), len(values))
	}
	r.Lock()
	defer r.Unlock()
	row := make([]string, len(values))
	copy(row, values)
	r.rows.PushBack(row)
	return nil
}

// Rows returns every row loaded so far, in insertion order.
func (r *Relation) Rows() [][]string {
	r.RLock()
	defer r.RUnlock()
	out := make([][]string, 0, r.rows.Len())
	for e := r.rows.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.([]string))
	}
	return out
}

// Store is a flat, single-namespace collection of Relations: the
// "externally supplied schema" spec.md's analyzer reads from, plus the
// rows a CLI or test can replay into a real backing SQL engine.
type Store struct {
	mu        sync.Mutex
	relations map[string]*Relation
}

func NewStore() *Store {
	return &Store{relations: make(map[string]*Relation)}
}

// CreateRelation registers a new, empty relation. It is an error to
// redefine an existing name.
func (s *Store) CreateRelation(name string, columns []string) (*Relation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.relations[name]; exists {
		return nil, fmt.Errorf("relation %q already exists", name)
	}
	r := NewRelation(name, columns)
	s.relations[name] = r
	return r, nil
}

// Relation looks up a previously created relation by name.
func (s *Store) Relation(name string) (*Relation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.relations[name]
	if !ok {
		return nil, fmt.Errorf("relation %q does not exist", name)
	}
	return r, nil
}

// Relations returns every relation in the Store, in no particular order.
func (s *Store) Relations() []*Relation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Relation, 0, len(s.relations))
	for _, r := range s.relations {
		out = append(out, r)
	}
	return out
}

// Schema projects the Store's relation columns into the analyzer.Schema
// shape the compiler consumes.
func (s *Store) Schema() analyzer.Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	schema := make(analyzer.Schema, len(s.relations))
	for name, r := range s.relations {
		cols := make([]string, len(r.columns))
		copy(cols, r.columns)
		schema[name] = cols
	}
	return schema
}
