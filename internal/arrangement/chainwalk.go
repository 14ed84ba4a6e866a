package arrangement

// discoverChain walks the trapezoids a new segment crosses, left to right,
// without mutating the map. It is the validation pass: the map must be
// left untouched when it returns an error, so all splitting happens
// afterward, once the whole chain is known to be legal.
func (m *Map) discoverChain(seg *Segment) ([]TrapezoidHandle, error) {
	start := m.Locate(seg.Left.X, seg.Left.Y, seg.Left, DirRight)
	end := m.Locate(seg.Right.X, seg.Right.Y, seg.Right, DirLeft)

	var chain []TrapezoidHandle
	cur := start
	for {
		t := m.traps.Get(cur)
		if segmentsCross(seg, t.Top) || segmentsCross(seg, t.Bottom) {
			return nil, ErrCrossing
		}
		m.trace.chainStep(len(chain), cur)
		chain = append(chain, cur)
		if cur == end {
			return chain, nil
		}
		if AboveSegment(seg, t.RightP) == On {
			return nil, ErrCrossing
		}
		// seg leaves t through the right neighbor whose extent at t's right
		// wall contains seg's height there.
		x, y := t.RightP.X, seg.YAtRat(t.RightP.X)
		cur = NoTrapezoid
		for _, rn := range t.RightNeighbors {
			if rn != NoTrapezoid && m.bottomYAt(m.traps.Get(rn), x).Cmp(y) < 0 && m.topYAt(m.traps.Get(rn), x).Cmp(y) > 0 {
				cur = rn
			}
		}
		if cur == NoTrapezoid {
			return nil, ErrCrossing
		}
	}
}

// segmentsCross reports whether a and b properly cross (no shared or
// touching endpoint), using the same exact determinant predicate as
// AboveSegment so a transversal crossing is caught wherever along a
// trapezoid's Top/Bottom it happens, not only at a trapezoid corner. A nil
// boundary is the bounding rectangle's own edge and can't be crossed by a
// validated in-bounds segment.
func segmentsCross(a, b *Segment) bool {
	if a == nil || b == nil {
		return false
	}
	o1 := AboveSegment(a, b.Left)
	o2 := AboveSegment(a, b.Right)
	o3 := AboveSegment(b, a.Left)
	o4 := AboveSegment(b, a.Right)
	if o1 == On || o2 == On || o3 == On || o4 == On {
		return false
	}
	return o1 != o2 && o3 != o4
}

// prepareLeftBoundary ensures the trapezoid containing p has p as its own
// LeftP, splitting it at p if p falls strictly inside. It returns the
// handle of the trapezoid immediately to the right of p, the first
// trapezoid the insertion proper will split by the segment.
func (m *Map) prepareLeftBoundary(p *Point) TrapezoidHandle {
	trapH := m.Locate(p.X, p.Y, p, DirRight)
	t := m.traps.Get(trapH)
	if t.LeftP == p {
		return trapH
	}
	leaf := t.Sink
	outsideH := m.traps.New(t.LeftP, p, t.Top, t.Bottom)
	innerH := m.traps.New(p, t.RightP, t.Top, t.Bottom)
	outside, inner := m.traps.Get(outsideH), m.traps.Get(innerH)

	for _, ln := range t.LeftNeighbors {
		if ln == NoTrapezoid {
			continue
		}
		lnT := m.traps.Get(ln)
		replaceOrAddNeighbor(&lnT.RightNeighbors, trapH, outsideH)
		addNeighbor(&outside.LeftNeighbors, ln)
	}
	for _, rn := range t.RightNeighbors {
		if rn == NoTrapezoid {
			continue
		}
		rnT := m.traps.Get(rn)
		replaceOrAddNeighbor(&rnT.LeftNeighbors, trapH, innerH)
		addNeighbor(&inner.RightNeighbors, rn)
	}
	addNeighbor(&outside.RightNeighbors, innerH)
	addNeighbor(&inner.LeftNeighbors, outsideH)

	outsideLeaf := m.nodes.NewLeaf(outsideH)
	innerLeaf := m.nodes.NewLeaf(innerH)
	outside.Sink, inner.Sink = outsideLeaf, innerLeaf

	xnode := m.nodes.NewXNode(p, outsideLeaf, innerLeaf)
	m.root = m.nodes.ReplaceLeafEverywhere(m.root, leaf, xnode)
	m.trace.splitHorizontal(p, outsideH, innerH)
	return innerH
}

// prepareRightBoundary is prepareLeftBoundary's mirror for the segment's
// right endpoint.
func (m *Map) prepareRightBoundary(q *Point) TrapezoidHandle {
	trapH := m.Locate(q.X, q.Y, q, DirLeft)
	t := m.traps.Get(trapH)
	if t.RightP == q {
		return trapH
	}
	leaf := t.Sink
	innerH := m.traps.New(t.LeftP, q, t.Top, t.Bottom)
	outsideH := m.traps.New(q, t.RightP, t.Top, t.Bottom)
	inner, outside := m.traps.Get(innerH), m.traps.Get(outsideH)

	for _, ln := range t.LeftNeighbors {
		if ln == NoTrapezoid {
			continue
		}
		lnT := m.traps.Get(ln)
		replaceOrAddNeighbor(&lnT.RightNeighbors, trapH, innerH)
		addNeighbor(&inner.LeftNeighbors, ln)
	}
	for _, rn := range t.RightNeighbors {
		if rn == NoTrapezoid {
			continue
		}
		rnT := m.traps.Get(rn)
		replaceOrAddNeighbor(&rnT.LeftNeighbors, trapH, outsideH)
		addNeighbor(&outside.RightNeighbors, rn)
	}
	addNeighbor(&inner.RightNeighbors, outsideH)
	addNeighbor(&outside.LeftNeighbors, innerH)

	innerLeaf := m.nodes.NewLeaf(innerH)
	outsideLeaf := m.nodes.NewLeaf(outsideH)
	inner.Sink, outside.Sink = innerLeaf, outsideLeaf

	xnode := m.nodes.NewXNode(q, innerLeaf, outsideLeaf)
	m.root = m.nodes.ReplaceLeafEverywhere(m.root, leaf, xnode)
	m.trace.splitHorizontal(q, innerH, outsideH)
	return innerH
}
