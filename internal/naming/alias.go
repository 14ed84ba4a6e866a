package naming

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/halvorsen/trapmap/internal/arrangement"
)

// Aliaser hands out human-readable aliases for DAG nodes, turning a handle
// into something easier to tell apart in a terminal. Scoped to one Map's
// worth of handles and kept distinct from the deterministic P/Q/S/T labels
// Names assigns: those are stable across runs for the adjacency dump,
// these are scrambled on purpose so nobody mistakes them for identifiers
// that mean anything run to run.
type Aliaser struct {
	memo map[arrangement.NodeHandle]string
}

func init() {
	// Aliases are for telling two prompt lines apart at a glance, not for
	// reproducing a run.
	petname.NonDeterministicMode()
}

// NewAliaser returns an empty alias table.
func NewAliaser() *Aliaser {
	return &Aliaser{memo: make(map[arrangement.NodeHandle]string)}
}

// Alias returns h's alias, minting one the first time h is seen.
func (a *Aliaser) Alias(h arrangement.NodeHandle) string {
	if h == arrangement.NoNode {
		return "Ø"
	}
	if name, ok := a.memo[h]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	a.memo[h] = name
	return name
}
