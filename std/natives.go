/*
File    : gomix-core/std/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"
	"strings"
	"time"

	"github.com/akashmaji946/gomix-core/objects"
)

func init() {
	register("clock", 0, nativeClock)
	register("str", 1, nativeStr)
	register("len", 1, nativeLen)
	register("map", 2, nativeMap)
	register("filter", 2, nativeFilter)
	register("reduce", 2, nativeReduce)
	register("push", 2, nativePush)
	register("keys", 1, nativeKeys)
	register("upper", 1, nativeUpper)
	register("lower", 1, nativeLower)
	register("type", 1, nativeType)
}

func argErr(name, want string) error {
	return fmt.Errorf("ERROR: %s expects %s", name, want)
}

// nativeClock returns the current Unix time, in seconds, as a Number.
func nativeClock(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	return objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

// nativeStr stringifies any Value using its own String() rule.
func nativeStr(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	return objects.String{Value: args[0].String()}, nil
}

// nativeLen returns an Array's element count. Non-arrays are rejected.
func nativeLen(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, argErr("len", "an array argument")
	}
	return objects.Number{Value: float64(len(arr.Elements))}, nil
}

func asCallable(v objects.Value, who string) (objects.Callable, error) {
	c, ok := v.(objects.Callable)
	if !ok {
		return nil, argErr(who, "a callable as its first argument")
	}
	return c, nil
}

func asArray(v objects.Value, who string) (*objects.Array, error) {
	a, ok := v.(*objects.Array)
	if !ok {
		return nil, argErr(who, "an array as its second argument")
	}
	return a, nil
}

// nativeMap applies f to every element of a, collecting the results into
// a fresh array.
func nativeMap(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	f, err := asCallable(args[0], "map")
	if err != nil {
		return nil, err
	}
	arr, err := asArray(args[1], "map")
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(arr.Elements))
	for i, el := range arr.Elements {
		v, err := rt.Call(f, []objects.Value{el})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return objects.NewArray(out), nil
}

// nativeFilter keeps the elements of a for which f returns a truthy
// value.
func nativeFilter(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	f, err := asCallable(args[0], "filter")
	if err != nil {
		return nil, err
	}
	arr, err := asArray(args[1], "filter")
	if err != nil {
		return nil, err
	}
	var out []objects.Value
	for _, el := range arr.Elements {
		v, err := rt.Call(f, []objects.Value{el})
		if err != nil {
			return nil, err
		}
		if objects.Truthy(v) {
			out = append(out, el)
		}
	}
	return objects.NewArray(out), nil
}

// nativeReduce folds a left to right with the binary function f. An
// empty array reduces to Nil; a singleton reduces to its only element.
func nativeReduce(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	f, err := asCallable(args[0], "reduce")
	if err != nil {
		return nil, err
	}
	arr, err := asArray(args[1], "reduce")
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return objects.Nil{}, nil
	}
	acc := arr.Elements[0]
	for _, el := range arr.Elements[1:] {
		acc, err = rt.Call(f, []objects.Value{acc, el})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// nativePush returns a fresh array equal to the argument array with
// value appended. It does not mutate its argument: Array is an aliasable
// reference type, and an in-place-mutating native would be surprising
// without that behavior being named explicitly.
func nativePush(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, argErr("push", "an array as its first argument")
	}
	out := make([]objects.Value, len(arr.Elements)+1)
	copy(out, arr.Elements)
	out[len(arr.Elements)] = args[1]
	return objects.NewArray(out), nil
}

// nativeKeys returns a Dictionary's keys as an Array, in insertion order.
func nativeKeys(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	dict, ok := args[0].(*objects.Dictionary)
	if !ok {
		return nil, argErr("keys", "a dict argument")
	}
	return objects.NewArray(dict.Keys()), nil
}

func nativeUpper(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	s, ok := args[0].(objects.String)
	if !ok {
		return nil, argErr("upper", "a string argument")
	}
	return objects.String{Value: strings.ToUpper(s.Value)}, nil
}

func nativeLower(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	s, ok := args[0].(objects.String)
	if !ok {
		return nil, argErr("lower", "a string argument")
	}
	return objects.String{Value: strings.ToLower(s.Value)}, nil
}

// nativeType returns the runtime type name of its argument, e.g. "number"
// or "array".
func nativeType(rt objects.Runtime, args []objects.Value) (objects.Value, error) {
	return objects.String{Value: string(args[0].Type())}, nil
}
