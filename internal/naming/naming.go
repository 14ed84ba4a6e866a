package naming

import (
	"fmt"

	"github.com/halvorsen/trapmap/internal/arrangement"
)

// Names is the stable labeling assigned after construction: P/Q for segment
// left/right endpoints (in segment insertion order), S for segments
// (insertion order), T for unique trapezoids (DAG traversal, first-seen
// order). NodeName maps every reachable DAG node handle to the label it
// should carry in the adjacency export.
type Names struct {
	P, Q, S, T []string
	NodeName   map[arrangement.NodeHandle]string

	// TrapName maps a trapezoid handle to its T-name, the lookup the
	// plotting collaborator needs (it has trapezoid handles from
	// Map.LiveTrapezoids, not node handles).
	TrapName map[arrangement.TrapezoidHandle]string

	// Order is the P, then Q, then S, then T concatenation: the row/column
	// label sequence of the adjacency matrix (dimension p+q+n+t).
	Order []string
	index map[string]int
}

// Build walks m's segments (for P/Q/S) and its DAG (for T) and assigns
// names. It does not itself build the adjacency matrix; call BuildMatrix
// for that once Names exists.
func Build(m *arrangement.Map) (*Names, error) {
	segs := m.Segments()
	if len(segs) == 0 && m.Trapezoids().Count() == 0 {
		return nil, ErrEmptyMap
	}

	names := &Names{NodeName: make(map[arrangement.NodeHandle]string)}

	pIndex := make(map[*arrangement.Point]string)
	for _, s := range segs {
		if _, ok := pIndex[s.Left]; ok {
			continue
		}
		name := fmt.Sprintf("P%d", len(names.P)+1)
		pIndex[s.Left] = name
		names.P = append(names.P, name)
	}

	qIndex := make(map[*arrangement.Point]string)
	for _, s := range segs {
		if _, ok := qIndex[s.Right]; ok {
			continue
		}
		name := fmt.Sprintf("Q%d", len(names.Q)+1)
		qIndex[s.Right] = name
		names.Q = append(names.Q, name)
	}

	segIndex := make(map[*arrangement.Segment]string, len(segs))
	for i, s := range segs {
		name := fmt.Sprintf("S%d", i+1)
		segIndex[s] = name
		names.S = append(names.S, name)
	}

	trapIndex := make(map[arrangement.TrapezoidHandle]string)
	walkOrdered(m.Nodes(), m.Root(), func(h arrangement.NodeHandle, n *arrangement.Node) {
		switch n.Kind {
		case arrangement.KindX:
			if name, ok := pIndex[n.XKey]; ok {
				names.NodeName[h] = name
			} else if name, ok := qIndex[n.XKey]; ok {
				names.NodeName[h] = name
			}
		case arrangement.KindY:
			names.NodeName[h] = segIndex[n.YKey]
		case arrangement.KindLeaf:
			name, ok := trapIndex[n.Trap]
			if !ok {
				name = fmt.Sprintf("T%d", len(names.T)+1)
				trapIndex[n.Trap] = name
				names.T = append(names.T, name)
			}
			names.NodeName[h] = name
		}
	})
	names.TrapName = trapIndex

	names.Order = make([]string, 0, len(names.P)+len(names.Q)+len(names.S)+len(names.T))
	names.Order = append(names.Order, names.P...)
	names.Order = append(names.Order, names.Q...)
	names.Order = append(names.Order, names.S...)
	names.Order = append(names.Order, names.T...)
	names.index = make(map[string]int, len(names.Order))
	for i, name := range names.Order {
		names.index[name] = i
	}
	return names, nil
}

// walkOrdered is a deterministic pre-order DFS (left/above child first),
// distinct from arrangement.Store.Walk's unspecified LIFO order. First-seen
// naming needs a fixed traversal order, which is this package's job to
// establish, not the arena's.
func walkOrdered(nodes *arrangement.Store, root arrangement.NodeHandle, visit func(arrangement.NodeHandle, *arrangement.Node)) {
	seen := make(map[arrangement.NodeHandle]bool)
	var rec func(h arrangement.NodeHandle)
	rec = func(h arrangement.NodeHandle) {
		if seen[h] {
			return
		}
		seen[h] = true
		n := nodes.Get(h)
		visit(h, n)
		switch n.Kind {
		case arrangement.KindX:
			rec(n.Left)
			rec(n.Right)
		case arrangement.KindY:
			rec(n.Above)
			rec(n.Below)
		}
	}
	rec(root)
}
