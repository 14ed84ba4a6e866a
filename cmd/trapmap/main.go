// Command trapmap builds a trapezoidal map from an input segment file and,
// depending on flags, dumps its adjacency matrix, runs the interactive
// point-location prompt, and/or renders a PNG plot. It is a thin harness
// around the core, which lives in github.com/halvorsen/trapmap and
// internal/arrangement.
package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/halvorsen/trapmap"
)

var (
	app = kingpin.New("trapmap", "Incremental trapezoidal map and point-location engine")

	inputPath   = app.Flag("input", "input file (n, bounding rect, n segment lines)").Required().Short('i').String()
	outputPath  = app.Flag("output", "adjacency matrix dump path").Short('o').Default("output.txt").String()
	interactive = app.Flag("interactive", "run the point-location prompt on stdin/stdout").Bool()
	plotPath    = app.Flag("plot", "render the map to this PNG path").String()
	plotITerm   = app.Flag("plot-iterm", "preview the rendered plot inline (iTerm2 only)").Bool()
	verbose     = app.Flag("verbose", "narrate each split and merge to stderr").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.Open(*inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	input, err := parseInput(f)
	if err != nil {
		return err
	}

	m := trapmap.New(input.xLo, input.yLo, input.xHi, input.yHi)
	m.SetVerbose(*verbose)

	for i, seg := range input.segments {
		left := trapmap.Point{X: seg[0], Y: seg[1]}
		right := trapmap.Point{X: seg[2], Y: seg[3]}
		if err := m.Insert(left, right); err != nil {
			return fmt.Errorf("trapmap: segment %d (%v -> %v): %w", i+1, left, right, err)
		}
	}

	if err := writeAdjacencyDump(m, *outputPath); err != nil {
		return err
	}

	if *plotPath != "" {
		if err := renderPlot(m, *plotPath); err != nil {
			return err
		}
		if *plotITerm {
			if err := previewITerm(*plotPath); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}

	if *interactive {
		return runPrompt(m, os.Stdin, os.Stdout)
	}
	return nil
}
