/*
File    : gomix-core/std/std.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package std registers the Language's native callables: clock, str, len,
map, filter, reduce, plus a small supplemental set (push, keys, upper,
lower, type) in the same spirit as a scripting language's small standard
prelude. Every native is a plain arity-checked function over
objects.Value; the three higher-order ones (map, filter, reduce) take a
Runtime so they can invoke a user-defined Callable without package std
depending on package eval.
*/
package std

import "github.com/akashmaji946/gomix-core/objects"

// Builtin names and arities a single native function.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(rt objects.Runtime, args []objects.Value) (objects.Value, error)
}

// Builtins is the full native registry. Each evaluator copies these into
// its globals environment at startup.
var Builtins []Builtin

func register(name string, arity int, fn func(rt objects.Runtime, args []objects.Value) (objects.Value, error)) {
	Builtins = append(Builtins, Builtin{Name: name, Arity: arity, Fn: fn})
}
