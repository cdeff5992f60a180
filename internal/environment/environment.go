/*
Package environment implements the Lox lexical environment: an ordered
stack of scope frames, generalizing the teacher's Scope
(scope/scope.go) down to the single mutable `var` binding form of
spec.md §3 — no consts, no let-typed variables, no closure-capture
Copy(), since this language has neither constants nor functions.
*/
package environment

import "github.com/niinpatel/lox-interpreter/internal/value"

// Environment is one frame of the scope chain. A nil enclosing marks
// the outermost (global) frame.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a frame enclosed by parent, or a global frame when parent
// is nil.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: parent}
}

// Define binds name in this frame, overwriting any existing binding of
// the same name in this frame only (redeclaration in the same block
// shadows silently, per spec.md §3).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name by walking from this frame outward to the global
// frame. The bool result is false when the name is bound nowhere in the
// chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.enclosing {
		if v, ok := f.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign mutates the innermost frame that already binds name, walking
// outward until it finds one. The bool result is false when name is
// bound nowhere in the chain — callers must treat that as an undefined
// variable error (spec.md §4.4); Assign never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) bool {
	for f := e; f != nil; f = f.enclosing {
		if _, ok := f.values[name]; ok {
			f.values[name] = v
			return true
		}
	}
	return false
}
