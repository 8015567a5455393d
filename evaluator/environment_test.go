package evaluator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithra-lang/mithra/object"
)

func TestEnvironmentLookupWalksToParent(t *testing.T) {
	global := NewEnvironment(nil)
	global.Set("x", object.NewInt(1))

	local := NewEnvironment(global)
	value, ok := local.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(1), value.(*object.Int).Value())
}

func TestEnvironmentSetWritesInnermostScope(t *testing.T) {
	global := NewEnvironment(nil)
	global.Set("x", object.NewInt(1))

	local := NewEnvironment(global)
	local.Set("x", object.NewInt(2))

	value, _ := local.Get("x")
	require.Equal(t, int64(2), value.(*object.Int).Value())

	value, _ = global.Get("x")
	require.Equal(t, int64(1), value.(*object.Int).Value())
}

func TestEnvironmentMissingName(t *testing.T) {
	local := NewEnvironment(NewEnvironment(nil))
	_, ok := local.Get("missing")
	require.False(t, ok)
}
