/*
File    : gomix-core/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects_test

import (
	"testing"

	"github.com/akashmaji946/gomix-core/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberStringDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "3", objects.Number{Value: 3.0}.String())
	assert.Equal(t, "3.5", objects.Number{Value: 3.5}.String())
}

func TestTruthyRules(t *testing.T) {
	assert.False(t, objects.Truthy(objects.Nil{}))
	assert.False(t, objects.Truthy(objects.Boolean{Value: false}))
	assert.True(t, objects.Truthy(objects.Boolean{Value: true}))
	assert.True(t, objects.Truthy(objects.Number{Value: 0}))
	assert.True(t, objects.Truthy(objects.String{Value: ""}))
	assert.True(t, objects.Truthy(objects.NewArray(nil)))
}

func TestDictionaryNumberAndStringKeysDoNotCollide(t *testing.T) {
	d := objects.NewDictionary()
	ok1 := d.Put(objects.Number{Value: 5}, objects.String{Value: "number-five"})
	ok2 := d.Put(objects.String{Value: "5"}, objects.String{Value: "string-five"})
	require.True(t, ok1)
	require.True(t, ok2)

	n, ok := d.Get(objects.Number{Value: 5})
	require.True(t, ok)
	assert.Equal(t, objects.String{Value: "number-five"}, n)

	s, ok := d.Get(objects.String{Value: "5"})
	require.True(t, ok)
	assert.Equal(t, objects.String{Value: "string-five"}, s)
}

func TestDictionaryGetAbsentKeyReportsFalse(t *testing.T) {
	d := objects.NewDictionary()
	_, ok := d.Get(objects.String{Value: "missing"})
	assert.False(t, ok)
}

func TestDictionaryKeysPreserveInsertionOrder(t *testing.T) {
	d := objects.NewDictionary()
	d.Put(objects.String{Value: "z"}, objects.Number{Value: 1})
	d.Put(objects.String{Value: "a"}, objects.Number{Value: 2})
	d.Put(objects.String{Value: "m"}, objects.Number{Value: 3})

	keys := d.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, objects.String{Value: "z"}, keys[0])
	assert.Equal(t, objects.String{Value: "a"}, keys[1])
	assert.Equal(t, objects.String{Value: "m"}, keys[2])
}

func TestDictionaryPutOverwritesExistingKeyWithoutDuplicatingInsertionOrder(t *testing.T) {
	d := objects.NewDictionary()
	d.Put(objects.String{Value: "a"}, objects.Number{Value: 1})
	d.Put(objects.String{Value: "a"}, objects.Number{Value: 2})

	assert.Len(t, d.Keys(), 1)
	v, _ := d.Get(objects.String{Value: "a"})
	assert.Equal(t, objects.Number{Value: 2}, v)
}

func TestArrayAliasesSharedBackingSlice(t *testing.T) {
	a := objects.NewArray([]objects.Value{objects.Number{Value: 1}})
	b := a
	b.Elements[0] = objects.Number{Value: 99}
	assert.Equal(t, objects.Number{Value: 99}, a.Elements[0])
}

func TestArrayStringRendersCommaSeparated(t *testing.T) {
	a := objects.NewArray([]objects.Value{objects.Number{Value: 1}, objects.String{Value: "x"}})
	assert.Equal(t, `[1, x]`, a.String())
}
