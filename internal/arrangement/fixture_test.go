package arrangement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtureSegmentsPentagonInsertsCleanly(t *testing.T) {
	segments, err := LoadFixtureSegments("pentagon")
	require.NoError(t, err)
	require.Len(t, segments, 5)

	m := New(0, 0, 100, 100)
	for i, s := range segments {
		require.NoErrorf(t, m.Insert(s.Left, s.Right), "edge %d", i)
	}
	assertMapInvariants(t, m)
	assert.Len(t, m.Segments(), 5)
}

func TestLoadFixtureSegmentsNotchedPentagonInsertsCleanly(t *testing.T) {
	// A simple but non-convex polygon, boundary still non-crossing by
	// construction, exercising the chain walk's above/below neighbor
	// selection around a reflex vertex.
	segments, err := LoadFixtureSegments("notched_pentagon")
	require.NoError(t, err)
	require.Len(t, segments, 6)

	m := New(0, 0, 100, 100)
	for i, s := range segments {
		require.NoErrorf(t, m.Insert(s.Left, s.Right), "edge %d", i)
	}
	assertMapInvariants(t, m)
	assert.Len(t, m.Segments(), 6)

	// Every live trapezoid handle must still dereference to a trapezoid
	// record.
	for _, th := range m.LiveTrapezoids() {
		trap := m.traps.Get(th)
		require.NotNil(t, trap)
	}
}

func TestLoadFixtureSegmentsUnknownNameErrors(t *testing.T) {
	_, err := LoadFixtureSegments("does-not-exist")
	assert.Error(t, err)
}
