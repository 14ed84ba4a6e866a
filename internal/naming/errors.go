// Package naming assigns deterministic, stable labels to the points,
// segments and trapezoids of an arrangement.Map and exports its adjacency
// structure. It follows the same sentinel-error convention
// internal/arrangement uses, even though this package has only one failure
// mode, for consistency across the module.
package naming

import "errors"

// ErrEmptyMap is returned by Export when the map has no trapezoids at all,
// which should be unreachable (New always seeds one) but is checked anyway
// since Export is a public entry point.
var ErrEmptyMap = errors.New("naming: map has no trapezoids to export")
