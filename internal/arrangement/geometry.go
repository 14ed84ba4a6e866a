package arrangement

import "math/big"

// Point is an (x, y) pair with integer coordinates, as guaranteed by the
// input file format. Points are compared by identity where the data model
// calls for it (a segment's endpoints, a trapezoid's corners) and by value
// via Cmp where an ordering is needed.
type Point struct {
	X, Y int64
}

// Cmp orders points lexicographically by x then y.
func (p Point) Cmp(other Point) int {
	if p.X != other.X {
		if p.X < other.X {
			return -1
		}
		return 1
	}
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// Segment stores its endpoints. By the time a Segment reaches the
// arrangement, the parser collaborator has already normalized it so that
// Left.X <= Right.X; constructors here re-check that invariant.
type Segment struct {
	Left, Right *Point
}

// NewSegment builds a Segment from two endpoints, swapping them if needed so
// that Left.X <= Right.X.
func NewSegment(a, b *Point) *Segment {
	if a.Cmp(*b) <= 0 {
		return &Segment{Left: a, Right: b}
	}
	return &Segment{Left: b, Right: a}
}

// IsVertical reports whether the segment has no x-extent. Vertical segments
// are rejected at insertion time.
func (s *Segment) IsVertical() bool {
	return s.Left.X == s.Right.X
}

// YAtRat returns the exact y value of the segment at x, as a rational. The
// plotter uses it for drawing; inside the arrangement it backs the exact
// height comparisons that pick a trapezoid's neighbors (overlapsVertically
// and the chain walk's choice of the next trapezoid).
func (s *Segment) YAtRat(x int64) *big.Rat {
	dx := s.Right.X - s.Left.X
	if dx == 0 {
		return big.NewRat(s.Left.Y, 1)
	}
	num := big.NewInt(s.Right.Y - s.Left.Y)
	num.Mul(num, big.NewInt(x-s.Left.X))
	den := big.NewInt(dx)
	result := new(big.Rat).SetFrac(num, den)
	result.Add(result, big.NewRat(s.Left.Y, 1))
	return result
}

// Orientation is the result of comparing a point to a segment's line.
type Orientation int

const (
	Below Orientation = iota
	On
	Above
)

// AboveSegment classifies pt against segment s using the determinant form
//
//	(Right.X-Left.X)(pt.Y-Left.Y) - (Right.Y-Left.Y)(pt.X-Left.X)
//
// so that the comparison is exact for integer inputs. The determinant is
// widened to *big.Int so that no input magnitude the file format allows can
// overflow the multiplication.
func AboveSegment(s *Segment, pt *Point) Orientation {
	dx := big.NewInt(s.Right.X - s.Left.X)
	dy := big.NewInt(s.Right.Y - s.Left.Y)
	px := big.NewInt(pt.X - s.Left.X)
	py := big.NewInt(pt.Y - s.Left.Y)

	lhs := new(big.Int).Mul(dx, py)
	rhs := new(big.Int).Mul(dy, px)
	det := lhs.Sub(lhs, rhs)

	switch det.Sign() {
	case 0:
		return On
	case 1:
		return Above
	default:
		return Below
	}
}

// XOrder classifies a query x-coordinate against a vertical line through pt.
// A tie (equal x) routes left (-1).
func XOrder(queryX int64, pt *Point) int {
	switch {
	case queryX < pt.X:
		return -1
	case queryX > pt.X:
		return 1
	default:
		return -1
	}
}
