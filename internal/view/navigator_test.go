package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavigatorClamps(t *testing.T) {
	for n := 1; n <= 5; n++ {
		nav := NewNavigator(n, 0)
		for _, req := range []int{-3, -1, 0, 1, n - 1, n, n + 4} {
			got := nav.Jump(req).Index()
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, n-1)
		}

		nav = NewNavigator(n, 0)
		for i := 0; i < n+2; i++ {
			nav = nav.Next()
		}
		require.Equal(t, n-1, nav.Index())
		for i := 0; i < n+2; i++ {
			nav = nav.Prev()
		}
		require.Equal(t, 0, nav.Index())
	}
}

func TestNavigatorBoundaries(t *testing.T) {
	nav := NewNavigator(3, 0)
	require.False(t, nav.CanPrev())
	require.True(t, nav.CanNext())

	nav = nav.Next()
	require.True(t, nav.CanPrev())
	require.True(t, nav.CanNext())

	nav = nav.Next()
	require.True(t, nav.CanPrev())
	require.False(t, nav.CanNext())

	single := NewNavigator(1, 0)
	require.False(t, single.CanPrev())
	require.False(t, single.CanNext())

	empty := NewNavigator(0, 4)
	require.Equal(t, 0, empty.Index())
	require.False(t, empty.CanNext())
}
