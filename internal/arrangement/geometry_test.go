package arrangement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointCmp(t *testing.T) {
	assert.Equal(t, -1, Point{X: 0, Y: 0}.Cmp(Point{X: 1, Y: 0}))
	assert.Equal(t, 1, Point{X: 1, Y: 0}.Cmp(Point{X: 0, Y: 0}))
	assert.Equal(t, -1, Point{X: 0, Y: 0}.Cmp(Point{X: 0, Y: 1}))
	assert.Equal(t, 0, Point{X: 2, Y: 3}.Cmp(Point{X: 2, Y: 3}))
}

func TestNewSegmentNormalizesEndpoints(t *testing.T) {
	a := &Point{X: 10, Y: 0}
	b := &Point{X: 0, Y: 0}
	s := NewSegment(a, b)
	assert.Same(t, b, s.Left)
	assert.Same(t, a, s.Right)
}

func TestIsVertical(t *testing.T) {
	s := NewSegment(&Point{X: 5, Y: 0}, &Point{X: 5, Y: 10})
	assert.True(t, s.IsVertical())

	s2 := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 10, Y: 0})
	assert.False(t, s2.IsVertical())
}

func TestAboveSegment(t *testing.T) {
	s := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 10, Y: 0})
	assert.Equal(t, Above, AboveSegment(s, &Point{X: 5, Y: 1}))
	assert.Equal(t, Below, AboveSegment(s, &Point{X: 5, Y: -1}))
	assert.Equal(t, On, AboveSegment(s, &Point{X: 5, Y: 0}))

	diag := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 10, Y: 10})
	assert.Equal(t, On, AboveSegment(diag, &Point{X: 5, Y: 5}))
	assert.Equal(t, Above, AboveSegment(diag, &Point{X: 5, Y: 6}))
	assert.Equal(t, Below, AboveSegment(diag, &Point{X: 5, Y: 4}))
}

func TestYAtRat(t *testing.T) {
	s := NewSegment(&Point{X: 0, Y: 0}, &Point{X: 10, Y: 20})
	r := s.YAtRat(5)
	f, _ := r.Float64()
	require.InDelta(t, 10.0, f, 1e-9)
}

func TestXOrderTieBreaksLeft(t *testing.T) {
	pt := &Point{X: 5, Y: 0}
	assert.Equal(t, -1, XOrder(4, pt))
	assert.Equal(t, 1, XOrder(6, pt))
	assert.Equal(t, -1, XOrder(5, pt))
}
