/*
File    : gomix-core/std/natives_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"testing"

	"github.com/akashmaji946/gomix-core/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime "calls" a Callable by running the call func each test
// supplies, without pulling in package eval (which would be an import
// cycle: eval already depends on std).
type fakeRuntime struct {
	call func(c objects.Callable, args []objects.Value) (objects.Value, error)
}

func (f fakeRuntime) Call(c objects.Callable, args []objects.Value) (objects.Value, error) {
	return f.call(c, args)
}

// doubleFn is a fake Callable standing in for a user lambda `lambda(x)=>{return x*2;}`.
type doubleFn struct{}

func (doubleFn) Type() objects.GoMixType { return objects.CallableType }
func (doubleFn) String() string          { return "<fn double>" }
func (doubleFn) Arity() int              { return 1 }
func (doubleFn) Name() string            { return "double" }

func TestLen(t *testing.T) {
	arr := objects.NewArray([]objects.Value{objects.Number{Value: 1}, objects.Number{Value: 2}})
	v, err := nativeLen(nil, []objects.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, objects.Number{Value: 2}, v)
}

func TestLen_RejectsNonArray(t *testing.T) {
	_, err := nativeLen(nil, []objects.Value{objects.Number{Value: 1}})
	assert.Error(t, err)
}

func TestMap_DoublesElements(t *testing.T) {
	rt := fakeRuntime{call: func(c objects.Callable, args []objects.Value) (objects.Value, error) {
		n := args[0].(objects.Number)
		return objects.Number{Value: n.Value * 2}, nil
	}}
	arr := objects.NewArray([]objects.Value{objects.Number{Value: 1}, objects.Number{Value: 2}, objects.Number{Value: 3}})
	v, err := nativeMap(rt, []objects.Value{doubleFn{}, arr})
	require.NoError(t, err)
	out := v.(*objects.Array)
	require.Len(t, out.Elements, 3)
	assert.Equal(t, objects.Number{Value: 6}, out.Elements[2])
}

func TestFilter_KeepsTruthy(t *testing.T) {
	rt := fakeRuntime{call: func(c objects.Callable, args []objects.Value) (objects.Value, error) {
		n := args[0].(objects.Number)
		return objects.Boolean{Value: n.Value > 4}, nil
	}}
	arr := objects.NewArray([]objects.Value{objects.Number{Value: 2}, objects.Number{Value: 5}, objects.Number{Value: 10}})
	v, err := nativeFilter(rt, []objects.Value{doubleFn{}, arr})
	require.NoError(t, err)
	out := v.(*objects.Array)
	assert.Len(t, out.Elements, 2)
}

func TestReduce_Sums(t *testing.T) {
	rt := fakeRuntime{call: func(c objects.Callable, args []objects.Value) (objects.Value, error) {
		a := args[0].(objects.Number)
		b := args[1].(objects.Number)
		return objects.Number{Value: a.Value + b.Value}, nil
	}}
	arr := objects.NewArray([]objects.Value{objects.Number{Value: 1}, objects.Number{Value: 2}, objects.Number{Value: 3}})
	v, err := nativeReduce(rt, []objects.Value{doubleFn{}, arr})
	require.NoError(t, err)
	assert.Equal(t, objects.Number{Value: 6}, v)
}

func TestReduce_Empty(t *testing.T) {
	arr := objects.NewArray(nil)
	v, err := nativeReduce(fakeRuntime{}, []objects.Value{doubleFn{}, arr})
	require.NoError(t, err)
	assert.Equal(t, objects.Nil{}, v)
}

func TestPush_DoesNotMutateOriginal(t *testing.T) {
	arr := objects.NewArray([]objects.Value{objects.Number{Value: 1}})
	v, err := nativePush(nil, []objects.Value{arr, objects.Number{Value: 2}})
	require.NoError(t, err)
	assert.Len(t, arr.Elements, 1)
	assert.Len(t, v.(*objects.Array).Elements, 2)
}

func TestKeys_InsertionOrder(t *testing.T) {
	d := objects.NewDictionary()
	d.Put(objects.String{Value: "b"}, objects.Number{Value: 1})
	d.Put(objects.String{Value: "a"}, objects.Number{Value: 2})
	v, err := nativeKeys(nil, []objects.Value{d})
	require.NoError(t, err)
	out := v.(*objects.Array)
	require.Len(t, out.Elements, 2)
	assert.Equal(t, objects.String{Value: "b"}, out.Elements[0])
	assert.Equal(t, objects.String{Value: "a"}, out.Elements[1])
}

func TestUpperLower(t *testing.T) {
	v, err := nativeUpper(nil, []objects.Value{objects.String{Value: "Go"}})
	require.NoError(t, err)
	assert.Equal(t, objects.String{Value: "GO"}, v)

	v, err = nativeLower(nil, []objects.Value{objects.String{Value: "Go"}})
	require.NoError(t, err)
	assert.Equal(t, objects.String{Value: "go"}, v)
}

func TestType(t *testing.T) {
	v, err := nativeType(nil, []objects.Value{objects.Number{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, objects.String{Value: "number"}, v)
}
