package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parsedInput is the already-parsed value the core receives: a bounding
// rectangle and a list of segment endpoint pairs with x1 <= x2 already
// enforced.
type parsedInput struct {
	xLo, yLo, xHi, yHi int64
	segments           [][4]int64 // x1, y1, x2, y2
}

// parseInput reads the input file format:
//
//	line 1:   n
//	line 2:   x_lo y_lo x_hi y_hi
//	lines 3..n+2: x1 y1 x2 y2
//
// swapping (x1,y1)/(x2,y2) when x1 > x2 so the core always sees
// left.X <= right.X.
func parseInput(r io.Reader) (*parsedInput, error) {
	scanner := bufio.NewScanner(r)

	n, err := nextInts(scanner, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1 (segment count): %v", ErrMalformedInput, err)
	}
	count := int(n[0])
	if count < 0 {
		return nil, fmt.Errorf("%w: negative segment count", ErrMalformedInput)
	}

	rect, err := nextInts(scanner, 4)
	if err != nil {
		return nil, fmt.Errorf("%w: line 2 (bounding rectangle): %v", ErrMalformedInput, err)
	}
	xLo, yLo, xHi, yHi := rect[0], rect[1], rect[2], rect[3]
	if xLo >= xHi || yLo >= yHi {
		return nil, fmt.Errorf("%w: bounding rectangle must have x_lo < x_hi and y_lo < y_hi", ErrMalformedInput)
	}

	segments := make([][4]int64, 0, count)
	for i := 0; i < count; i++ {
		fields, err := nextInts(scanner, 4)
		if err != nil {
			return nil, fmt.Errorf("%w: segment line %d: %v", ErrMalformedInput, i+1, err)
		}
		x1, y1, x2, y2 := fields[0], fields[1], fields[2], fields[3]
		if x1 > x2 {
			x1, x2, y1, y2 = x2, x1, y2, y1
		}
		segments = append(segments, [4]int64{x1, y1, x2, y2})
	}

	return &parsedInput{xLo: xLo, yLo: yLo, xHi: xHi, yHi: yHi, segments: segments}, nil
}

// nextInts scans the next non-blank line and splits it into exactly want
// whitespace-separated integers.
func nextInts(scanner *bufio.Scanner, want int) ([]int64, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != want {
			return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
		}
		out := make([]int64, want)
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("field %q is not an integer: %w", f, err)
			}
			out[i] = v
		}
		return out, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}
