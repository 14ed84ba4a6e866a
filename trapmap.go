// Package trapmap builds an incremental trapezoidal map and point-location
// search structure over a set of non-crossing segments inside an
// axis-aligned bounding rectangle.
//
// Construction is imperative: call Insert once per segment, in any order
// that doesn't make two segments cross. Once built, Locate answers "which
// trapezoid contains (x, y)?" in expected O(log n) after n insertions.
package trapmap

import (
	"io"

	"github.com/halvorsen/trapmap/internal/arrangement"
	"github.com/halvorsen/trapmap/internal/naming"
)

// Re-export the data model's public surface by aliasing the package that
// does the real work instead of redeclaring its types.
type (
	Point           = arrangement.Point
	Segment         = arrangement.Segment
	Trapezoid       = arrangement.Trapezoid
	TrapezoidID     = arrangement.TrapezoidHandle
	NodeID          = arrangement.NodeHandle
	Names           = naming.Names
	AdjacencyMatrix = naming.Matrix
)

// Sentinel errors, re-exported so callers don't need to import
// internal/arrangement directly to do an errors.Is check.
var (
	ErrOutOfBounds       = arrangement.ErrOutOfBounds
	ErrCrossing          = arrangement.ErrCrossing
	ErrCollinear         = arrangement.ErrCollinear
	ErrVertical          = arrangement.ErrVertical
	ErrDegenerateSegment = arrangement.ErrDegenerateSegment
)

// Map is the trapezoidal map and its search structure for one bounding
// rectangle.
type Map struct {
	inner *arrangement.Map
}

// New builds the initial single-trapezoid map for the rectangle with
// corners (xLo, yLo) and (xHi, yHi).
func New(xLo, yLo, xHi, yHi int64) *Map {
	return &Map{inner: arrangement.New(xLo, yLo, xHi, yHi)}
}

// SetVerbose gates the step-by-step insertion trace.
func (m *Map) SetVerbose(v bool) { m.inner.SetVerbose(v) }

// Insert adds the segment (a, b) to the map. The map is left unchanged if
// the segment is out of bounds, crosses a previously inserted segment, is
// vertical, or is degenerate.
func (m *Map) Insert(a, b Point) error {
	return m.inner.Insert(&a, &b)
}

// Locate returns the handle of the trapezoid containing (x, y).
func (m *Map) Locate(x, y int64) TrapezoidID {
	return m.inner.LocatePoint(x, y)
}

// Trapezoid dereferences a TrapezoidID returned by Locate or LiveTrapezoids.
func (m *Map) Trapezoid(id TrapezoidID) *Trapezoid {
	return m.inner.Trapezoids().Get(id)
}

// PathTo returns the ordered node names from root down to the leaf
// containing (x, y), for the interactive prompt collaborator. Call
// BuildNames first and reuse its result across calls to avoid rebuilding
// it per query.
func (m *Map) PathTo(names *Names, x, y int64) []string {
	handles := m.inner.PathTo(x, y)
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		if name, ok := names.NodeName[h]; ok {
			out = append(out, name)
		}
	}
	return out
}

// PathToHandles is PathTo without the name lookup, for callers (the
// interactive prompt) that want to pair the deterministic name with a
// separate Aliaser alias per node.
func (m *Map) PathToHandles(x, y int64) []NodeID {
	return m.inner.PathTo(x, y)
}

// Aliaser is re-exported for callers that want human-readable, per-run
// aliases alongside the deterministic P/Q/S/T names.
type Aliaser = naming.Aliaser

// NewAliaser returns an empty alias table scoped to one Map's handles.
func NewAliaser() *Aliaser { return naming.NewAliaser() }

// BuildNames assigns the deterministic P/Q/S/T labels.
func (m *Map) BuildNames() (*Names, error) {
	return naming.Build(m.inner)
}

// ExportAdjacency writes the adjacency matrix dump to w.
func (m *Map) ExportAdjacency(w io.Writer) error {
	return naming.Export(m.inner, w)
}

// Bounds returns the bounding rectangle's two corners.
func (m *Map) Bounds() (left, right Point) {
	return m.inner.Bounds()
}

// Segments returns every segment inserted so far, in insertion order.
func (m *Map) Segments() []*Segment {
	return m.inner.Segments()
}

// LiveTrapezoids returns the handle of every trapezoid currently in the map,
// for the plotting collaborator.
func (m *Map) LiveTrapezoids() []TrapezoidID {
	return m.inner.LiveTrapezoids()
}
