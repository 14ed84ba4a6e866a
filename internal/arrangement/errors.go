// Package arrangement: sentinel error set.
// Every failure the insertion engine or the search structure can report is a
// package-level sentinel, checked with errors.Is, rather than a hand-rolled
// result enum or a panic on bad input.
package arrangement

import "errors"

var (
	// ErrOutOfBounds is returned when a segment endpoint lies outside the
	// bounding rectangle.
	ErrOutOfBounds = errors.New("arrangement: endpoint out of bounds")

	// ErrCrossing is returned when the new segment crosses a previously
	// inserted one. The map is left unchanged.
	ErrCrossing = errors.New("arrangement: segment crosses an existing segment")

	// ErrCollinear is returned for a segment that shares an endpoint with a
	// previously inserted segment and lies on the same line, whether the two
	// overlap or only meet end to end; treated as a Crossing-class error.
	ErrCollinear = errors.New("arrangement: overlapping collinear segment")

	// ErrVertical is returned for a vertical (zero x-extent) input segment,
	// which this module does not support.
	ErrVertical = errors.New("arrangement: vertical segment is not supported")

	// ErrDegenerateSegment is returned when a segment's two endpoints
	// coincide.
	ErrDegenerateSegment = errors.New("arrangement: segment has coincident endpoints")
)
