// ==============================================================================================
// FILE: object/environment_unit_test.go
// PURPOSE: Verifies the scope chain: Get/Declare/Assign/Resolve/Global.
// ==============================================================================================

package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeclareBindsInCurrentScopeOnly(t *testing.T) {
	outer := NewEnvironment()
	inner := NewEnclosedEnvironment(outer)
	inner.Declare("x", &Integer{Value: 1})

	_, ok := outer.Get("x")
	require.False(t, ok)

	val, ok := inner.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*Integer).Value)
}

func TestAssignUpdatesExistingOuterBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("counter", &Integer{Value: 0})
	inner := NewEnclosedEnvironment(outer)

	inner.Assign("counter", &Integer{Value: 1})

	val, ok := outer.Get("counter")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*Integer).Value)

	_, ok = inner.store["counter"]
	require.False(t, ok, "Assign must not shadow in the inner scope when an outer binding exists")
}

func TestAssignCreatesInCurrentScopeWhenUnbound(t *testing.T) {
	env := NewEnvironment()
	env.Assign("fresh", &String{Value: "hi"})
	val, ok := env.Get("fresh")
	require.True(t, ok)
	require.Equal(t, "hi", val.(*String).Value)
}

func TestResolveFindsOwningScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	require.Same(t, outer, inner.Resolve("x"))
	require.Nil(t, inner.Resolve("missing"))
}

func TestGlobalWalksToOutermostScope(t *testing.T) {
	root := NewEnvironment()
	mid := NewEnclosedEnvironment(root)
	leaf := NewEnclosedEnvironment(mid)

	require.Same(t, root, leaf.Global())
	require.Same(t, root, root.Global())
}
