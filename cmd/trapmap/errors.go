package main

import "errors"

// Sentinel errors for the external collaborators around the core: input
// parsing, the interactive prompt, and plot preview.
var (
	// ErrMalformedInput is returned by the parser on a structurally bad
	// input file: wrong line count, non-integer fields, or a degenerate
	// bounding rectangle.
	ErrMalformedInput = errors.New("trapmap: malformed input file")

	// ErrQueryMalformed is returned by the prompt when a line isn't two
	// whitespace-separated floats. The prompt logs and continues rather
	// than exiting.
	ErrQueryMalformed = errors.New("trapmap: query line is not two numbers")

	// ErrDisplayUnavailable is returned by the plotter when an image can be
	// rendered but not previewed in-terminal; callers log it and carry on.
	ErrDisplayUnavailable = errors.New("trapmap: terminal image preview unavailable")
)
