package arrangement

// Map is the trapezoidal map and its search structure, for one bounding
// rectangle. Construction is imperative: call Insert once per segment. Map
// is not safe for concurrent Insert/Locate: the harness using it is
// expected to build, then query.
type Map struct {
	nodes *Store
	traps *TrapezoidStore
	root  NodeHandle

	boundLeft, boundRight *Point

	// pointIndex canonicalizes coincident endpoints: the first time a
	// coordinate pair is seen, its *Point becomes canonical, and every later
	// segment naming the same coordinates reuses it instead of allocating a
	// shadow point.
	pointIndex map[[2]int64]*Point

	// incident tracks, per canonical point, every segment inserted so far
	// that has that point as an endpoint. It exists only to reject
	// collinear segments sharing an endpoint; it is not part of the search
	// structure.
	incident map[*Point][]*Segment

	// segments records every successfully inserted segment, in insertion
	// order, for internal/naming's S/P/Q labeling.
	segments []*Segment

	// Verbose gates the trace helper's stderr narration.
	Verbose bool
	trace   tracer
}

// New builds the initial single-trapezoid map for the rectangle with
// corners (xLo, yLo) and (xHi, yHi).
func New(xLo, yLo, xHi, yHi int64) *Map {
	nodes := NewStore()
	traps := NewTrapezoidStore()

	bl := &Point{X: xLo, Y: yLo}
	br := &Point{X: xHi, Y: yHi}
	root := traps.New(bl, br, nil, nil)
	sink := nodes.NewLeaf(root)
	traps.Get(root).Sink = sink

	m := &Map{
		nodes:      nodes,
		traps:      traps,
		root:       sink,
		boundLeft:  bl,
		boundRight: br,
		pointIndex: make(map[[2]int64]*Point),
		incident:   make(map[*Point][]*Segment),
	}
	m.canonicalPoint(bl)
	m.canonicalPoint(br)
	return m
}

// canonicalPoint returns the stable *Point for p's coordinates, registering
// p itself the first time those coordinates are seen.
func (m *Map) canonicalPoint(p *Point) *Point {
	key := [2]int64{p.X, p.Y}
	if existing, ok := m.pointIndex[key]; ok {
		return existing
	}
	m.pointIndex[key] = p
	return p
}

// Bounds returns the bounding rectangle's two corners.
func (m *Map) Bounds() (left, right Point) {
	return *m.boundLeft, *m.boundRight
}

// Root returns the handle of the search structure's root node, for naming
// and export (internal/naming walks from here).
func (m *Map) Root() NodeHandle { return m.root }

// Nodes exposes the node arena read-only, for naming/export and tests.
func (m *Map) Nodes() *Store { return m.nodes }

// Trapezoids exposes the trapezoid arena read-only, for naming/export and
// tests.
func (m *Map) Trapezoids() *TrapezoidStore { return m.traps }

// Segments returns every segment inserted so far, in insertion order, for
// internal/naming's P/Q/S labeling.
func (m *Map) Segments() []*Segment { return m.segments }

func (m *Map) setVerbose(v bool) {
	m.Verbose = v
	m.trace.enabled = v
}

// SetVerbose toggles the step-by-step trace narration.
func (m *Map) SetVerbose(v bool) { m.setVerbose(v) }

// LiveTrapezoids returns the handle of every trapezoid still reachable from
// a leaf, in first-seen DAG order, deduplicated (a merged trapezoid may be
// the Trap of several leaves). Used by the plotting and adjacency-export
// collaborators, which both need "every trapezoid currently in the map"
// rather than "every trapezoid ever allocated" (TrapezoidStore.Count
// includes orphans).
func (m *Map) LiveTrapezoids() []TrapezoidHandle {
	var out []TrapezoidHandle
	seen := make(map[TrapezoidHandle]bool)
	m.nodes.Walk(m.root, func(_ NodeHandle, n *Node) {
		if n.Kind != KindLeaf {
			return
		}
		if !seen[n.Trap] {
			seen[n.Trap] = true
			out = append(out, n.Trap)
		}
	})
	return out
}
