// ==============================================================================================
// FILE: object/object_unit_test.go
// PURPOSE: Verifies Inspect() output and HashKey behavior for the runtime type system.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatInspectAppendsDotZeroForWholeValues(t *testing.T) {
	require.Equal(t, "2.0", (&Float{Value: 2}).Inspect())
	require.Equal(t, "2.5", (&Float{Value: 2.5}).Inspect())
	require.Equal(t, "0.1", (&Float{Value: 0.1}).Inspect())
}

func TestIntegerInspect(t *testing.T) {
	require.Equal(t, "42", (&Integer{Value: 42}).Inspect())
	require.Equal(t, "-7", (&Integer{Value: -7}).Inspect())
}

func TestBooleanAndNullInspect(t *testing.T) {
	require.Equal(t, "true", (&Boolean{Value: true}).Inspect())
	require.Equal(t, "false", (&Boolean{Value: false}).Inspect())
	require.Equal(t, "none", (&Null{}).Inspect())
}

func TestHashKeyEqualForEqualValues(t *testing.T) {
	require.Equal(t, (&Integer{Value: 5}).HashKey(), (&Integer{Value: 5}).HashKey())
	require.Equal(t, (&String{Value: "hi"}).HashKey(), (&String{Value: "hi"}).HashKey())
	require.NotEqual(t, (&String{Value: "hi"}).HashKey(), (&String{Value: "bye"}).HashKey())
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "z"}, &String{Value: "z"}, &Integer{Value: 1})
	d.Set(&String{Value: "a"}, &String{Value: "a"}, &Integer{Value: 2})
	d.Set(&String{Value: "m"}, &String{Value: "m"}, &Integer{Value: 3})

	keys := d.Keys()
	require.Len(t, keys, 3)
	require.Equal(t, "z", keys[0].(*String).Value)
	require.Equal(t, "a", keys[1].(*String).Value)
	require.Equal(t, "m", keys[2].(*String).Value)
}

func TestDictSetOnExistingKeyKeepsPosition(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "a"}, &String{Value: "a"}, &Integer{Value: 1})
	d.Set(&String{Value: "b"}, &String{Value: "b"}, &Integer{Value: 2})
	d.Set(&String{Value: "a"}, &String{Value: "a"}, &Integer{Value: 99})

	keys := d.Keys()
	require.Equal(t, "a", keys[0].(*String).Value)
	v, ok := d.Get(&String{Value: "a"})
	require.True(t, ok)
	require.Equal(t, int64(99), v.(*Integer).Value)
}

func TestDictDeletePreservesRemainingOrder(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "a"}, &String{Value: "a"}, &Integer{Value: 1})
	d.Set(&String{Value: "b"}, &String{Value: "b"}, &Integer{Value: 2})
	d.Set(&String{Value: "c"}, &String{Value: "c"}, &Integer{Value: 3})

	d.Delete(&String{Value: "b"})
	require.Equal(t, 2, d.Len())

	keys := d.Keys()
	require.Equal(t, "a", keys[0].(*String).Value)
	require.Equal(t, "c", keys[1].(*String).Value)
}

func TestClassMethodLookup(t *testing.T) {
	class := &Class{Name: "Account", Methods: map[string]*Function{"deposit": {Name: "deposit"}}}
	fn, ok := class.Method("deposit")
	require.True(t, ok)
	require.Equal(t, "deposit", fn.Name)

	_, ok = class.Method("withdraw")
	require.False(t, ok)
}

func TestInstanceInspectListsFieldsInDefaultOrder(t *testing.T) {
	class := &Class{
		Name:          "Point",
		FieldDefaults: []FieldDefault{{Name: "x"}, {Name: "y"}},
	}
	inst := &Instance{Class: class, Fields: map[string]Object{"x": &Integer{Value: 1}, "y": &Integer{Value: 2}}}
	require.Equal(t, "Point{x: 1, y: 2}", inst.Inspect())
}
