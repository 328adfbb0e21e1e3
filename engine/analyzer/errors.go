package analyzer

import "fmt"

// SchemaError reports a relation referenced by an atom that Schema does
// not contain.
type SchemaError struct {
	Relation string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no such table: %s", e.Relation)
}

// ArityError reports an atom whose argument count disagrees with the
// relation's declared arity.
type ArityError struct {
	Relation string
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("table %s has %d columns, but %d were queried", e.Relation, e.Want, e.Got)
}

// UnboundProjected reports a Want variable that never occurs in the
// conjunction it is projected from.
type UnboundProjected struct {
	Variable string
}

func (e *UnboundProjected) Error() string {
	return fmt.Sprintf("variable %s not bound anywhere", e.Variable)
}

// UnboundVariable reports a variable with neither a positive binding site
// nor an external binding.
type UnboundVariable struct {
	Variable string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("variable %s not bound in any positive predicate", e.Variable)
}

// BindingSyntaxError reports a malformed external variable binding: a
// BoundVars key that isn't identifier-shaped ([A-Za-z][A-Za-z0-9]*).
type BindingSyntaxError struct {
	Name string
}

func (e *BindingSyntaxError) Error() string {
	return fmt.Sprintf("malformed variable binding name: %q", e.Name)
}

// ProjectedWithoutPositiveSite reports a Want variable that passes the
// general "bound somewhere" check (step 5) only through an external
// BoundVars entry or a negated-atom occurrence, but has no positive
// binding site to project from (step 8 requires one: the projection law
// in spec §8 ties every projected alias to a first-positive binding
// site).
type ProjectedWithoutPositiveSite struct {
	Variable string
}

func (e *ProjectedWithoutPositiveSite) Error() string {
	return fmt.Sprintf("variable %s not positively bound, cannot be projected", e.Variable)
}
