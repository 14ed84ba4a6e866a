package arrangement

import "math/big"

// topYAt (and bottomYAt) returns the trapezoid's top (or bottom) y-coordinate at x, as an
// exact rational. A nil Top/Bottom means the trapezoid's edge on that side
// is the bounding rectangle's own edge.
func (m *Map) topYAt(t *Trapezoid, x int64) *big.Rat {
	if t.Top == nil {
		return big.NewRat(m.boundRight.Y, 1)
	}
	return t.Top.YAtRat(x)
}

func (m *Map) bottomYAt(t *Trapezoid, x int64) *big.Rat {
	if t.Bottom == nil {
		return big.NewRat(m.boundLeft.Y, 1)
	}
	return t.Bottom.YAtRat(x)
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// overlapsVertically reports whether a and b have nonzero-length overlap in
// their y-extent at x. It decides whether two trapezoids on either side of a
// freshly cut vertical wall are actually neighbors.
func (m *Map) overlapsVertically(a, b *Trapezoid, x int64) bool {
	lo := maxRat(m.bottomYAt(a, x), m.bottomYAt(b, x))
	hi := minRat(m.topYAt(a, x), m.topYAt(b, x))
	return lo.Cmp(hi) < 0
}
