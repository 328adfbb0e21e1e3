// Package analyzer binds the variables of a parsed DRC conjunction against
// an external Schema, checks arity, classifies every argument occurrence,
// and emits the equivalent SQL SELECT. A top-level Compile assembles the
// per-conjunction SELECTs into the full UNION query.
package analyzer

// Schema maps a relation name to its ordered column names. The core only
// reads it; it is supplied by an external collaborator (engine/store, in
// this repository).
type Schema map[string][]string

// Arity returns the number of columns of relation, and whether it exists.
func (s Schema) Arity(relation string) (int, bool) {
	cols, ok := s[relation]
	if !ok {
		return 0, false
	}
	return len(cols), true
}

// Column returns the column name at the given zero-based index of
// relation. Callers must have already validated the index via Arity.
func (s Schema) Column(relation string, index int) string {
	return s[relation][index]
}

// BoundVars maps an externally bound variable name to its string value.
type BoundVars map[string]string
