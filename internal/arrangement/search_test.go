package arrangement

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatePointOnVerticalRoutesLeft(t *testing.T) {
	m := New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&Point{X: 10, Y: 50}, &Point{X: 90, Y: 50}))

	// Querying exactly at P's x coordinate: exactly on a vertical through
	// an x-node routes left.
	left := m.LocatePoint(5, 50)
	onWall := m.LocatePoint(10, 75)
	assert.Equal(t, left, onWall)
}

func TestLocatePointOnSegmentRoutesAbove(t *testing.T) {
	m := New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&Point{X: 10, Y: 50}, &Point{X: 90, Y: 50}))

	above := m.LocatePoint(50, 75)
	onSegment := m.LocatePoint(50, 50)
	assert.Equal(t, above, onSegment)
}

// TestLocateReturnsContainingTrapezoid sweeps a grid of query points over a
// small arrangement and checks each one lands in a trapezoid that actually
// contains it: leftP.x <= x <= rightP.x and bottom.y(x) <= y <= top.y(x).
func TestLocateReturnsContainingTrapezoid(t *testing.T) {
	m := New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&Point{X: 10, Y: 50}, &Point{X: 90, Y: 50}))
	require.NoError(t, m.Insert(&Point{X: 30, Y: 60}, &Point{X: 70, Y: 90}))
	require.NoError(t, m.Insert(&Point{X: 20, Y: 10}, &Point{X: 80, Y: 30}))

	for x := int64(1); x < 100; x += 7 {
		for y := int64(1); y < 100; y += 7 {
			h := m.LocatePoint(x, y)
			tr := m.traps.Get(h)
			assert.LessOrEqual(t, tr.LeftP.X, x, "(%d,%d)", x, y)
			assert.GreaterOrEqual(t, tr.RightP.X, x, "(%d,%d)", x, y)

			yRat := big.NewRat(y, 1)
			assert.True(t, m.bottomYAt(tr, x).Cmp(yRat) <= 0, "(%d,%d) below its trapezoid's bottom", x, y)
			assert.True(t, m.topYAt(tr, x).Cmp(yRat) >= 0, "(%d,%d) above its trapezoid's top", x, y)
		}
	}
}

// TestSearchStructureIsAcyclic runs a three-color DFS over the search
// structure: a back edge to a node still on the stack would mean a cycle.
func TestSearchStructureIsAcyclic(t *testing.T) {
	m := New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&Point{X: 15, Y: 80}, &Point{X: 25, Y: 90}))
	require.NoError(t, m.Insert(&Point{X: 45, Y: 80}, &Point{X: 55, Y: 90}))
	require.NoError(t, m.Insert(&Point{X: 10, Y: 50}, &Point{X: 90, Y: 50}))

	const (
		white = iota
		gray
		black
	)
	color := make(map[NodeHandle]int)
	var visit func(h NodeHandle)
	visit = func(h NodeHandle) {
		require.NotEqual(t, gray, color[h], "cycle through node %d", h)
		if color[h] == black {
			return
		}
		color[h] = gray
		for _, child := range m.nodes.Get(h).Children() {
			visit(child)
		}
		color[h] = black
	}
	visit(m.root)

	// Every live trapezoid's sink must have been reached.
	for _, th := range m.LiveTrapezoids() {
		assert.Equal(t, black, color[m.traps.Get(th).Sink], "trapezoid %d's sink unreachable from the root", th)
	}
}

func TestPathToMatchesLocate(t *testing.T) {
	m := New(0, 0, 100, 100)
	require.NoError(t, m.Insert(&Point{X: 10, Y: 50}, &Point{X: 90, Y: 50}))
	require.NoError(t, m.Insert(&Point{X: 30, Y: 60}, &Point{X: 70, Y: 90}))

	for _, pt := range [][2]int64{{20, 75}, {50, 95}, {50, 10}, {5, 5}} {
		path := m.PathTo(pt[0], pt[1])
		require.NotEmpty(t, path)
		leaf := m.nodes.Get(path[len(path)-1])
		require.Equal(t, KindLeaf, leaf.Kind)
		assert.Equal(t, m.LocatePoint(pt[0], pt[1]), leaf.Trap)
	}
}
