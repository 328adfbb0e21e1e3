package analyzer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/drcalc/drcalc/engine/log"
	"github.com/drcalc/drcalc/engine/parser"
)

// Compile realizes spec §4.4 step 9 and §6's output contract: one SELECT
// per conjunction (disjunct), joined by UNION, followed by a deterministic
// ORDER BY over the projected variables in source order.
//
// Compile is a pure function of its arguments: no shared state, no global
// state, no mutation of inputs. Any number of queries may be compiled
// concurrently provided each has its own Schema/BoundVars view (spec §5).
func Compile(query parser.Query, schema Schema, bound BoundVars, wants []string) (string, error) {
	for name := range bound {
		if !isIdentifierShaped(name) {
			return "", &BindingSyntaxError{Name: name}
		}
	}

	corrID := uuid.NewString()
	log.Info(corrID, "compiling query with %d disjunct(s), wants=%v", len(query.Disjuncts), wants)

	selects := make([]string, len(query.Disjuncts))
	for i, conj := range query.Disjuncts {
		sql, err := compileConjunction(conj, schema, bound, wants, corrID)
		if err != nil {
			log.Info(corrID, "compilation failed on disjunct %d: %s", i, err)
			return "", err
		}
		selects[i] = sql
	}

	out := strings.Join(selects, " UNION ")
	if len(wants) > 0 {
		out += " ORDER BY " + strings.Join(wants, ", ") + " ASC"
	}
	return out, nil
}

// isIdentifierShaped checks the [A-Za-z][A-Za-z0-9]* rule spec §6
// requires of bound-variable names (a superset of isVariableName's
// alpha-only rule, since a BoundVars key need not itself appear as a
// variable argument to be well-formed).
func isIdentifierShaped(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		alpha := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		digit := r >= '0' && r <= '9'
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !digit {
			return false
		}
	}
	return true
}
