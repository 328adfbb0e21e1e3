package analyzer

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/drcalc/drcalc/engine/log"
	"github.com/drcalc/drcalc/engine/parser"
)

// site is a binding site: the alias and column at which a variable is
// first bound positively.
type site struct {
	alias  string
	column string
}

func (s site) String() string { return s.alias + "." + s.column }

// isVariableName implements the alpha-only variable test (spec §4.4 step
// 3, §9 design note): purely alphabetic, as opposed to the lexer's
// alphanumeric identifier rule used for relation names. A parsed
// VariableTerm whose name fails this test is never a variable for binding
// or projection purposes — it behaves like a Wildcard downstream.
func isVariableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < 'A' || (r > 'Z' && r < 'a') || r > 'z' {
			return false
		}
	}
	return true
}

// compileConjunction implements spec §4.4 steps 1-8 for a single
// conjunction and returns its SELECT statement.
func compileConjunction(conj parser.Conjunction, schema Schema, bound BoundVars, wants []string, corrID string) (string, error) {
	// Step 1 — aliasing, Step 2 — arity + existence check.
	aliases := make([]string, len(conj.Atoms))
	for i, atom := range conj.Atoms {
		arity, ok := schema.Arity(atom.Relation)
		if !ok {
			return "", &SchemaError{Relation: atom.Relation}
		}
		if len(atom.Args) != arity {
			return "", &ArityError{Relation: atom.Relation, Want: arity, Got: len(atom.Args)}
		}
		aliases[i] = fmt.Sprintf("%s_%d", atom.Relation, i)
	}

	// Step 3 — variable inventory (insertion-ordered for determinism).
	var variables []string
	for _, atom := range conj.Atoms {
		for _, arg := range atom.Args {
			if arg.Kind != parser.VariableTerm || !isVariableName(arg.Name) {
				continue
			}
			if !slices.Contains(variables, arg.Name) {
				variables = append(variables, arg.Name)
			}
		}
	}

	// Step 4 — binding resolution: first positive occurrence of each
	// variable.
	colofvar := make(map[string]site)
	for i, atom := range conj.Atoms {
		if atom.Sign != parser.Positive {
			continue
		}
		for j, arg := range atom.Args {
			if arg.Kind != parser.VariableTerm || !isVariableName(arg.Name) {
				continue
			}
			if _, bound := colofvar[arg.Name]; bound {
				continue
			}
			colofvar[arg.Name] = site{alias: aliases[i], column: schema.Column(atom.Relation, j)}
		}
	}

	// Step 5 — semantic checks.
	for _, w := range wants {
		if !slices.Contains(variables, w) {
			return "", &UnboundProjected{Variable: w}
		}
	}
	for _, v := range variables {
		_, hasSite := colofvar[v]
		_, hasBound := bound[v]
		if !hasSite && !hasBound {
			return "", &UnboundVariable{Variable: v}
		}
	}

	// Step 6 — classification of positive argument positions.
	var valueBinds []string
	equalvars := make(map[string][]site)
	var equalvarOrder []string
	var fromClauses []string

	for i, atom := range conj.Atoms {
		if atom.Sign != parser.Positive {
			continue
		}
		fromClauses = append(fromClauses, fmt.Sprintf("%s %s", atom.Relation, aliases[i]))
		for j, arg := range atom.Args {
			col := schema.Column(atom.Relation, j)
			s := site{alias: aliases[i], column: col}
			switch {
			case arg.Kind == parser.LiteralTerm:
				valueBinds = append(valueBinds, fmt.Sprintf("%s = %s", s, escapeSQL(arg.Value)))
			case arg.Kind == parser.VariableTerm && isVariableName(arg.Name):
				if val, ok := bound[arg.Name]; ok {
					valueBinds = append(valueBinds, fmt.Sprintf("%s = %s", s, escapeSQL(val)))
					continue
				}
				if _, seen := equalvars[arg.Name]; !seen {
					equalvarOrder = append(equalvarOrder, arg.Name)
				}
				equalvars[arg.Name] = append(equalvars[arg.Name], s)
			default:
				// Wildcard, or a non-alphabetic identifier: no constraint.
			}
		}
	}

	var equalities []string
	for _, v := range equalvarOrder {
		sites := equalvars[v]
		for k := 1; k < len(sites); k++ {
			equalities = append(equalities, fmt.Sprintf("%s = %s", sites[k-1], sites[k]))
		}
	}

	// Step 7 — classification of negated atoms.
	var notExists []string
	for i, atom := range conj.Atoms {
		if atom.Sign != parser.Negated {
			continue
		}
		var conds []string
		for j, arg := range atom.Args {
			col := schema.Column(atom.Relation, j)
			s := site{alias: aliases[i], column: col}
			switch {
			case arg.Kind == parser.LiteralTerm:
				conds = append(conds, fmt.Sprintf("%s = %s", s, escapeSQL(arg.Value)))
			case arg.Kind == parser.VariableTerm && isVariableName(arg.Name):
				if val, ok := bound[arg.Name]; ok {
					conds = append(conds, fmt.Sprintf("%s = %s", s, escapeSQL(val)))
					continue
				}
				// Guaranteed present by step 5: every variable in the
				// conjunction has either a binding site or an external
				// binding before any negated atom is emitted.
				target := colofvar[arg.Name]
				conds = append(conds, fmt.Sprintf("%s = %s", s, target))
			default:
				// Wildcard, or non-alphabetic identifier: no constraint.
			}
		}
		sub := fmt.Sprintf("SELECT 1 FROM %s %s WHERE 1", atom.Relation, aliases[i])
		for _, c := range conds {
			sub += " AND " + c
		}
		notExists = append(notExists, fmt.Sprintf("NOT EXISTS (%s)", sub))
	}

	// Step 8 — SQL assembly. Every projected variable must have a
	// first-positive binding site (the projection law, spec §8): a Want
	// that only ever appears in a negated atom or only has an external
	// BoundVars entry passes step 5's "bound somewhere" check but has no
	// site to project here, and must be rejected rather than silently
	// emitting a zero-value site.
	selects := make([]string, len(wants))
	for i, w := range wants {
		s, ok := colofvar[w]
		if !ok {
			return "", &ProjectedWithoutPositiveSite{Variable: w}
		}
		selects[i] = fmt.Sprintf("%s AS %s", s, w)
	}

	var where []string
	where = append(where, valueBinds...)
	where = append(where, equalities...)
	where = append(where, notExists...)

	sql := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE 1", strings.Join(selects, ", "), strings.Join(fromClauses, ", "))
	for _, w := range where {
		sql += " AND " + w
	}

	log.Debug(corrID, "compiled conjunction with %d atoms (%d positive, %d negated)", len(conj.Atoms), len(fromClauses), len(notExists))
	return sql, nil
}

// escapeSQL escapes a string literal per spec §4.4 step 8: duplicate every
// backslash, then escape every double quote, then wrap in double quotes.
// Order matters — escaping the quotes first would double-escape the
// backslashes introduced by that step.
func escapeSQL(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
