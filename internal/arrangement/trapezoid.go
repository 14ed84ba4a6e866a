package arrangement

// TrapezoidHandle addresses a trapezoid in a TrapezoidStore. Trapezoid
// identity is never reused: a "modified" trapezoid is a new handle, never
// a mutation in place of a live one other code still holds.
type TrapezoidHandle int

// Trapezoid is the vertical-slab cell of the arrangement: LeftP/RightP
// bound it horizontally, Top/Bottom are the segments (or nil for the
// bounding rectangle's own edges) bounding it vertically.
//
// Neighbor bookkeeping follows the standard two-per-side structure used by
// Seidel's algorithm: upper-left/lower-left/upper-right/lower-right rather
// than literally "to the left"/"to the right".
type Trapezoid struct {
	LeftP, RightP *Point
	Top, Bottom   *Segment

	// LeftNeighbors holds up to two trapezoids across this trapezoid's left
	// wall: index 0 is the upper-left neighbor, index 1 the lower-left.
	LeftNeighbors [2]TrapezoidHandle
	// RightNeighbors holds up to two trapezoids across the right wall:
	// index 0 upper-right, index 1 lower-right.
	RightNeighbors [2]TrapezoidHandle

	// Sink is the leaf node in the Store whose Trap field is this
	// trapezoid's own handle. A trapezoid always has exactly one sink;
	// several DAG parents may point at that one sink after a merge.
	Sink NodeHandle
}

const NoTrapezoid TrapezoidHandle = -1

// TrapezoidStore is the arena owning every trapezoid that has ever been
// live. Orphaned trapezoids (superseded by a split or merge) are simply
// never looked up again; nothing frees them explicitly.
type TrapezoidStore struct {
	traps []Trapezoid
}

func NewTrapezoidStore() *TrapezoidStore {
	return &TrapezoidStore{}
}

func (ts *TrapezoidStore) alloc(t Trapezoid) TrapezoidHandle {
	ts.traps = append(ts.traps, t)
	return TrapezoidHandle(len(ts.traps) - 1)
}

// New allocates a trapezoid with empty neighbor lists. Handle 0 is a valid
// trapezoid handle, so neighbor slots must be seeded with NoTrapezoid
// explicitly rather than relying on the zero value.
func (ts *TrapezoidStore) New(leftP, rightP *Point, top, bottom *Segment) TrapezoidHandle {
	return ts.alloc(Trapezoid{
		LeftP: leftP, RightP: rightP, Top: top, Bottom: bottom,
		LeftNeighbors:  [2]TrapezoidHandle{NoTrapezoid, NoTrapezoid},
		RightNeighbors: [2]TrapezoidHandle{NoTrapezoid, NoTrapezoid},
		Sink:           NoNode,
	})
}

func (ts *TrapezoidStore) Get(h TrapezoidHandle) *Trapezoid {
	return &ts.traps[h]
}

// Count returns how many trapezoid records have ever been allocated
// (live and orphaned). internal/naming uses it only to check that the map
// is not empty; callers that want only *live* trapezoids walk the DAG
// instead (Map.LiveTrapezoids, and internal/naming for the adjacency
// export).
func (ts *TrapezoidStore) Count() int {
	return len(ts.traps)
}

// replaceOrAddNeighbor swaps old for replacement in a [2]TrapezoidHandle
// slot list, appending if old isn't present and there's room.
func replaceOrAddNeighbor(list *[2]TrapezoidHandle, old, replacement TrapezoidHandle) {
	for i, h := range list {
		if h == old {
			list[i] = replacement
			return
		}
	}
	addNeighbor(list, replacement)
}

func removeNeighbor(list *[2]TrapezoidHandle, old TrapezoidHandle) {
	for i, h := range list {
		if h == old {
			list[i] = NoTrapezoid
			return
		}
	}
}

func addNeighbor(list *[2]TrapezoidHandle, h TrapezoidHandle) {
	for i, existing := range list {
		if existing == h {
			return
		}
		if existing == NoTrapezoid {
			list[i] = h
			return
		}
	}
}
