package arrangement

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

// tracer narrates each split and merge step to stderr, gated on
// Map.Verbose and colorized by node kind.
type tracer struct {
	enabled bool
}

func (t tracer) splitHorizontal(at *Point, left, right TrapezoidHandle) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s split at %v -> left=%s right=%s\n",
		aurora.Cyan("horizontal"), *at, trapName(left), trapName(right))
}

func (t tracer) splitBySegment(seg *Segment, upper, lower TrapezoidHandle) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s by %v -> upper=%s lower=%s\n",
		aurora.Green("split"), *seg, trapName(upper), trapName(lower))
}

func (t tracer) merge(kind string, chunk []TrapezoidHandle, into TrapezoidHandle) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s chunk %v -> %s\n",
		aurora.Yellow("merge"), kind, chunk, trapName(into))
}

func (t tracer) chainStep(i int, h TrapezoidHandle) {
	if !t.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%s T%d = %s\n", aurora.Magenta("chain"), i, trapName(h))
}

func trapName(h TrapezoidHandle) string {
	if h == NoTrapezoid {
		return "Ø"
	}
	return fmt.Sprintf("t%d", h)
}
