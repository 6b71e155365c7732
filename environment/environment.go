/*
File    : gomix-core/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package environment implements the Language's lexical binding frames.
Environments form a tree via Parent links whose lifetimes are not nested
LIFO: a closure captures a reference to its declaring Environment and may
keep it alive long after control has left the declaring block, so
Environment is always handled by pointer and never copied.
*/
package environment

import "github.com/akashmaji946/gomix-core/objects"

// Environment is a single binding frame: a name-to-value map with a
// pointer to its enclosing frame. The global environment has Parent nil.
type Environment struct {
	values map[string]objects.Value
	Parent *Environment
}

// New creates an environment whose parent is the given frame (nil for
// the global environment).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]objects.Value), Parent: parent}
}

// Define binds name to value in this frame, creating or overwriting the
// binding. Used for variable declarations and parameter binding.
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get reads name from this frame only (no chain walk). Used by the
// evaluator together with Ancestor for resolved local lookups, and
// directly on globals for unresolved names.
func (e *Environment) Get(name string) (objects.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Assign updates name in the nearest frame (starting at this one, then
// walking Parent links) where it is already bound. Reports false if the
// name is not bound anywhere in the chain.
func (e *Environment) Assign(name string, value objects.Value) bool {
	for frame := e; frame != nil; frame = frame.Parent {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = value
			return true
		}
	}
	return false
}

// Ancestor walks distance Parent links up from e. The resolver guarantees
// distance never exceeds the chain length for any node it has recorded
// a depth for.
func (e *Environment) Ancestor(distance int) *Environment {
	frame := e
	for i := 0; i < distance; i++ {
		frame = frame.Parent
	}
	return frame
}
