package arrangement

// Direction disambiguates point location when the query point is exactly a
// segment endpoint already in the DAG (an x-node key): depending on which
// side of the chain walk is asking, the same coincident point must route to
// different trapezoids. A plain point-location query never needs it (ties
// break left/above), but the chain walk locating a segment's own endpoints
// does.
type Direction int

const (
	// DirAny is used by plain point-location queries, where the point is
	// not expected to be an existing endpoint.
	DirAny Direction = iota
	DirLeft
	DirRight
)

// Locate walks the DAG from root to the leaf containing (x, y). pt, when
// non-nil, is the canonical *Point being located (so that an x-node
// comparing pointer identity against a segment's own endpoint can honor
// dir); dir is only consulted when pt matches an x-node's key by pointer
// identity.
func (m *Map) Locate(x, y int64, pt *Point, dir Direction) TrapezoidHandle {
	h := m.root
	for {
		n := m.nodes.Get(h)
		switch n.Kind {
		case KindLeaf:
			return n.Trap
		case KindX:
			if pt != nil && n.XKey == pt {
				switch dir {
				case DirLeft:
					h = n.Left
					continue
				case DirRight:
					h = n.Right
					continue
				}
			}
			if XOrder(x, n.XKey) < 0 {
				h = n.Left
			} else {
				h = n.Right
			}
		case KindY:
			q := &Point{X: x, Y: y}
			switch AboveSegment(n.YKey, q) {
			case Below:
				h = n.Below
			default: // On or Above both route above
				h = n.Above
			}
		default:
			panic("arrangement: walked into a sentinel node")
		}
	}
}

// LocatePoint is the common case of Locate where the query point isn't
// expected to be an existing endpoint.
func (m *Map) LocatePoint(x, y int64) TrapezoidHandle {
	return m.Locate(x, y, nil, DirAny)
}

// PathTo returns the ordered node handles from root down to the leaf
// containing (x, y), for the prompt collaborator's path_to query.
func (m *Map) PathTo(x, y int64) []NodeHandle {
	var path []NodeHandle
	h := m.root
	for {
		path = append(path, h)
		n := m.nodes.Get(h)
		switch n.Kind {
		case KindLeaf:
			return path
		case KindX:
			if XOrder(x, n.XKey) < 0 {
				h = n.Left
			} else {
				h = n.Right
			}
		case KindY:
			q := &Point{X: x, Y: y}
			if AboveSegment(n.YKey, q) == Below {
				h = n.Below
			} else {
				h = n.Above
			}
		default:
			panic("arrangement: walked into a sentinel node")
		}
	}
}
