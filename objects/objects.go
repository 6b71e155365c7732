/*
File    : gomix-core/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package objects defines the Language's tagged runtime value domain: Nil,
Boolean, Number, String, Array, Dictionary, and Callable. Every concrete
type implements Value directly (no visitor double-dispatch) so the
evaluator can route on a plain type switch.
*/
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// GoMixType names a runtime value's tag, used for error messages and the
// `type` native.
type GoMixType string

const (
	NilType      GoMixType = "nil"
	BooleanType  GoMixType = "bool"
	NumberType   GoMixType = "number"
	StringType   GoMixType = "string"
	ArrayType    GoMixType = "array"
	DictType     GoMixType = "dict"
	CallableType GoMixType = "func"
)

// Value is implemented by every runtime value variant.
type Value interface {
	Type() GoMixType
	String() string
}

// Nil is the Language's sole null-ish value.
type Nil struct{}

func (Nil) Type() GoMixType { return NilType }
func (Nil) String() string  { return "nil" }

// Boolean is a tagged true/false value.
type Boolean struct{ Value bool }

func (b Boolean) Type() GoMixType { return BooleanType }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number is an IEEE-754 double, the Language's only numeric type.
type Number struct{ Value float64 }

func (n Number) Type() GoMixType { return NumberType }

// String renders n the way the Language's stringification rule requires:
// an integral value like 3.0 prints as "3", never "3.0".
func (n Number) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	return s
}

// String is an immutable text value.
type String struct{ Value string }

func (s String) Type() GoMixType { return StringType }
func (s String) String() string  { return s.Value }

// Array is a mutable, ordered sequence of Values. Arrays are reference
// values: two names bound to the same *Array alias the same backing
// slice, so mutation through one is observed through the other.
type Array struct {
	Elements []Value
}

func NewArray(elems []Value) *Array {
	return &Array{Elements: elems}
}

func (a *Array) Type() GoMixType { return ArrayType }

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Dictionary is a mutable mapping from Value keys to Value values. Keys
// are compared by value equality (Number by numeric equality, String by
// content, Bool/Nil by identity of their tag) via a canonical hash key
// string so that a Number key and a textually identical String key never
// collide. Dictionaries, like Arrays, are reference values.
type Dictionary struct {
	keys   []string // insertion order of hash keys, for `keys` and String()
	byHash map[string]dictEntry
}

type dictEntry struct {
	key   Value
	value Value
}

func NewDictionary() *Dictionary {
	return &Dictionary{byHash: make(map[string]dictEntry)}
}

func (d *Dictionary) Type() GoMixType { return DictType }

// hashKey produces a canonical, type-tagged string for key so that
// cross-type collisions (Number 5 vs String "5") never occur.
func hashKey(key Value) (string, bool) {
	switch k := key.(type) {
	case Number:
		v := k.Value
		if v == 0 {
			v = 0 // -0 == 0 numerically, so both share one key
		}
		return "n:" + strconv.FormatFloat(v, 'g', -1, 64), true
	case String:
		return "s:" + k.Value, true
	case Boolean:
		return "b:" + strconv.FormatBool(k.Value), true
	case Nil:
		return "nil", true
	default:
		return "", false
	}
}

// Put inserts or overwrites key -> value. Reports false if key is not a
// hashable Value (Array, Dictionary, Callable).
func (d *Dictionary) Put(key, value Value) bool {
	hk, ok := hashKey(key)
	if !ok {
		return false
	}
	if _, exists := d.byHash[hk]; !exists {
		d.keys = append(d.keys, hk)
	}
	d.byHash[hk] = dictEntry{key: key, value: value}
	return true
}

// Get looks up key, reporting whether it was present.
func (d *Dictionary) Get(key Value) (Value, bool) {
	hk, ok := hashKey(key)
	if !ok {
		return nil, false
	}
	entry, found := d.byHash[hk]
	if !found {
		return nil, false
	}
	return entry.value, true
}

// Keys returns the Dictionary's keys in insertion order.
func (d *Dictionary) Keys() []Value {
	out := make([]Value, 0, len(d.keys))
	for _, hk := range d.keys {
		out = append(out, d.byHash[hk].key)
	}
	return out
}

func (d *Dictionary) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, hk := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		entry := d.byHash[hk]
		b.WriteString(entry.key.String())
		b.WriteString(": ")
		b.WriteString(entry.value.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Callable is implemented by anything invocable from a Call expression:
// user-defined functions/lambdas and native functions.
type Callable interface {
	Value
	Arity() int
	Name() string
}

// Runtime is the callback surface a native function needs to invoke a
// user-defined Callable (e.g. the function argument to `map`/`filter`/
// `reduce`) without package objects or package std importing package
// eval. The evaluator is the sole implementation.
type Runtime interface {
	Call(callable Callable, args []Value) (Value, error)
}

// NativeFunction wraps a Go function as a Callable, used for `clock`,
// `str`, `len`, `map`, `filter`, `reduce`, and the other natives
// registered in package std.
type NativeFunction struct {
	FnName  string
	FnArity int
	Fn      func(rt Runtime, args []Value) (Value, error)
}

func (n *NativeFunction) Type() GoMixType { return CallableType }
func (n *NativeFunction) String() string  { return fmt.Sprintf("<native fn %s>", n.FnName) }
func (n *NativeFunction) Arity() int      { return n.FnArity }
func (n *NativeFunction) Name() string    { return n.FnName }
func (n *NativeFunction) Call(rt Runtime, args []Value) (Value, error) {
	return n.Fn(rt, args)
}

// Truthy implements the Language's truthiness rule: Nil and Boolean(false)
// are falsy; everything else (including 0, "", and empty arrays) is
// truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return val.Value
	default:
		return true
	}
}
