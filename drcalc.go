// Package drcalc translates Domain Relational Calculus expressions into
// equivalent SQL SELECT statements. See engine/lexer, engine/parser and
// engine/analyzer for the four pipeline stages; this file only wires them
// together into the single entry point external callers use.
package drcalc

import (
	"github.com/drcalc/drcalc/engine/analyzer"
	"github.com/drcalc/drcalc/engine/lexer"
	"github.com/drcalc/drcalc/engine/parser"
)

// Schema and BoundVars are re-exported so callers never need to import
// engine/analyzer directly for the two external-collaborator types.
type Schema = analyzer.Schema
type BoundVars = analyzer.BoundVars

// Compile lexes, parses, analyzes and emits query against schema and
// bound, projecting wants. It is a pure function of its arguments: no
// shared state, no global state, no mutation of inputs, so any number of
// queries may be compiled concurrently as long as each call gets its own
// Schema/BoundVars view.
func Compile(query string, schema Schema, bound BoundVars, wants []string) (string, error) {
	tokens, err := lexer.Lex(query)
	if err != nil {
		return "", err
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	return analyzer.Compile(tree, schema, bound, wants)
}
