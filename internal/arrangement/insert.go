package arrangement

import "math/big"

// Insert adds a segment with the given endpoints to the map, splitting and
// merging trapezoids and rewriting the search structure as needed. On error
// the map is left exactly as it was: every validation happens before any
// split or merge is performed.
func (m *Map) Insert(a, b *Point) error {
	if a.X == b.X && a.Y == b.Y {
		return ErrDegenerateSegment
	}
	pa, pb := m.canonicalPoint(a), m.canonicalPoint(b)
	seg := NewSegment(pa, pb)
	if seg.IsVertical() {
		return ErrVertical
	}
	if err := m.checkBounds(seg.Left); err != nil {
		return err
	}
	if err := m.checkBounds(seg.Right); err != nil {
		return err
	}
	if m.hasCollinearIncident(seg) {
		return ErrCollinear
	}

	chain, err := m.discoverChain(seg)
	if err != nil {
		return err
	}

	// Boundary prep may replace chain[0]/chain[len-1] with a narrower inner
	// piece; the interior of the chain is untouched by it.
	leftInner := m.prepareLeftBoundary(seg.Left)
	rightInner := m.prepareRightBoundary(seg.Right)
	chain[0] = leftInner
	chain[len(chain)-1] = rightInner

	leafOf := make([]NodeHandle, len(chain))
	for i, h := range chain {
		leafOf[i] = m.traps.Get(h).Sink
	}

	upperPieces := make([]TrapezoidHandle, len(chain))
	lowerPieces := make([]TrapezoidHandle, len(chain))
	for i, h := range chain {
		upperPieces[i], lowerPieces[i] = m.splitBySegment(h, seg)
	}

	upperLeaves := m.mergeChain(upperPieces, func(x, y *Trapezoid) bool { return x.Top == y.Top })
	lowerLeaves := m.mergeChain(lowerPieces, func(x, y *Trapezoid) bool { return x.Bottom == y.Bottom })

	for i := range chain {
		ynode := m.nodes.NewYNode(seg, upperLeaves[i], lowerLeaves[i])
		m.root = m.nodes.ReplaceLeafEverywhere(m.root, leafOf[i], ynode)
	}

	m.recordIncident(seg)
	return nil
}

func (m *Map) checkBounds(p *Point) error {
	if p.X <= m.boundLeft.X || p.X >= m.boundRight.X || p.Y <= m.boundLeft.Y || p.Y >= m.boundRight.Y {
		return ErrOutOfBounds
	}
	return nil
}

// hasCollinearIncident rejects a new segment that shares an endpoint with a
// previously inserted one and is collinear with it, rather than silently
// merging or overlapping the two.
func (m *Map) hasCollinearIncident(seg *Segment) bool {
	for _, p := range [2]*Point{seg.Left, seg.Right} {
		for _, e := range m.incident[p] {
			if segmentsCollinear(e, seg) {
				return true
			}
		}
	}
	return false
}

func (m *Map) recordIncident(seg *Segment) {
	m.incident[seg.Left] = append(m.incident[seg.Left], seg)
	m.incident[seg.Right] = append(m.incident[seg.Right], seg)
	m.segments = append(m.segments, seg)
}

func segmentsCollinear(e, s *Segment) bool {
	dx1 := big.NewInt(e.Right.X - e.Left.X)
	dy1 := big.NewInt(e.Right.Y - e.Left.Y)
	dx2 := big.NewInt(s.Right.X - s.Left.X)
	dy2 := big.NewInt(s.Right.Y - s.Left.Y)
	lhs := new(big.Int).Mul(dx1, dy2)
	rhs := new(big.Int).Mul(dy1, dx2)
	return lhs.Cmp(rhs) == 0
}

// splitBySegment splits the trapezoid at h into an upper piece (bounded
// above by h's old Top, below by seg) and a lower piece (bounded above by
// seg, below by h's old Bottom), rewiring neighbors on both sides against
// whatever h's neighbors currently are.
func (m *Map) splitBySegment(h TrapezoidHandle, seg *Segment) (upperH, lowerH TrapezoidHandle) {
	t := m.traps.Get(h)
	leftP, rightP, top, bottom := t.LeftP, t.RightP, t.Top, t.Bottom

	upperH = m.traps.New(leftP, rightP, top, seg)
	lowerH = m.traps.New(leftP, rightP, seg, bottom)
	upper, lower := m.traps.Get(upperH), m.traps.Get(lowerH)

	for _, ln := range t.LeftNeighbors {
		if ln == NoTrapezoid {
			continue
		}
		lnT := m.traps.Get(ln)
		removeNeighbor(&lnT.RightNeighbors, h)
		if m.overlapsVertically(upper, lnT, leftP.X) {
			addNeighbor(&upper.LeftNeighbors, ln)
			addNeighbor(&lnT.RightNeighbors, upperH)
		}
		if m.overlapsVertically(lower, lnT, leftP.X) {
			addNeighbor(&lower.LeftNeighbors, ln)
			addNeighbor(&lnT.RightNeighbors, lowerH)
		}
	}
	for _, rn := range t.RightNeighbors {
		if rn == NoTrapezoid {
			continue
		}
		rnT := m.traps.Get(rn)
		removeNeighbor(&rnT.LeftNeighbors, h)
		if m.overlapsVertically(upper, rnT, rightP.X) {
			addNeighbor(&upper.RightNeighbors, rn)
			addNeighbor(&rnT.LeftNeighbors, upperH)
		}
		if m.overlapsVertically(lower, rnT, rightP.X) {
			addNeighbor(&lower.RightNeighbors, rn)
			addNeighbor(&rnT.LeftNeighbors, lowerH)
		}
	}
	m.trace.splitBySegment(seg, upperH, lowerH)
	return upperH, lowerH
}

// mergeChain coalesces maximal runs of adjacent pieces that sameKey reports
// as mergeable (consecutive upper pieces sharing the same old Top, or
// consecutive lower pieces sharing the same old Bottom), allocates exactly
// one sink leaf per run, and returns, for each input piece, the leaf handle
// its chain position should point at.
func (m *Map) mergeChain(pieces []TrapezoidHandle, sameKey func(a, b *Trapezoid) bool) []NodeHandle {
	leafOf := make([]NodeHandle, len(pieces))
	i := 0
	for i < len(pieces) {
		j := i
		for j+1 < len(pieces) && sameKey(m.traps.Get(pieces[j]), m.traps.Get(pieces[j+1])) {
			j++
		}
		var mergedH TrapezoidHandle
		if j == i {
			mergedH = pieces[i]
		} else {
			mergedH = m.mergeRun(pieces[i : j+1])
		}
		leaf := m.nodes.NewLeaf(mergedH)
		m.traps.Get(mergedH).Sink = leaf
		for k := i; k <= j; k++ {
			leafOf[k] = leaf
		}
		i = j + 1
	}
	return leafOf
}

// mergeRun collapses a run of two or more mergeable pieces into one new
// trapezoid spanning the run's full horizontal extent, taking over the
// first piece's left neighbors and the last piece's right neighbors.
func (m *Map) mergeRun(run []TrapezoidHandle) TrapezoidHandle {
	first := m.traps.Get(run[0])
	last := m.traps.Get(run[len(run)-1])

	mergedH := m.traps.New(first.LeftP, last.RightP, first.Top, first.Bottom)
	merged := m.traps.Get(mergedH)

	for _, ln := range first.LeftNeighbors {
		if ln == NoTrapezoid {
			continue
		}
		lnT := m.traps.Get(ln)
		replaceOrAddNeighbor(&lnT.RightNeighbors, run[0], mergedH)
		addNeighbor(&merged.LeftNeighbors, ln)
	}
	for _, rn := range last.RightNeighbors {
		if rn == NoTrapezoid {
			continue
		}
		rnT := m.traps.Get(rn)
		replaceOrAddNeighbor(&rnT.LeftNeighbors, run[len(run)-1], mergedH)
		addNeighbor(&merged.RightNeighbors, rn)
	}
	m.trace.merge("run", run, mergedH)
	return mergedH
}
