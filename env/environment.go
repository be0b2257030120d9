// Package env implements the interpreter's variable storage: a single
// flat, process-wide mapping from name to value.
//
// The teacher interpreter's scope.Scope chains a Parent pointer to
// support nested lexical blocks. This language has no user-defined
// functions or block-local declarations — every VAR_DECL binds in the
// one shared environment regardless of which block it textually
// appears in — so the chain collapses to a single level with no
// parent lookup.
package env

import "github.com/Neche-Stephen/igbo-programming-language/value"

// Environment is a mapping from variable name to Value. Keys are
// unique; rebinding a name discards its previous value (last write
// wins). Insertion order carries no meaning.
type Environment struct {
	vars map[string]value.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Bind sets name to v, replacing any existing binding.
func (e *Environment) Bind(name string, v value.Value) {
	e.vars[name] = v
}

// Lookup returns the value bound to name and whether it was found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}
