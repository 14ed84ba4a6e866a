package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/halvorsen/trapmap"
)

// runPrompt implements the interactive CLI's query loop: read lines from
// in, each either a quit command or two whitespace-separated floats to
// locate.
func runPrompt(m *trapmap.Map, in io.Reader, out io.Writer) error {
	names, err := m.BuildNames()
	if err != nil {
		return fmt.Errorf("trapmap: building names for path_to: %w", err)
	}
	aliases := trapmap.NewAliaser()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "quit", "q", "exit", "e":
			return nil
		}

		x, y, err := parseQueryPoint(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		handles := m.PathToHandles(int64(x), int64(y))
		path := m.PathTo(names, int64(x), int64(y))
		steps := make([]string, 0, len(path))
		for i, label := range path {
			steps = append(steps, fmt.Sprintf("%s(%s)", label, aliases.Alias(handles[i])))
		}
		fmt.Fprintf(out, "%s\n", strings.Join(steps, " -> "))
	}
	return scanner.Err()
}

// parseQueryPoint parses "x y" into two floats. Coordinates are truncated
// to integers before locating, since the arrangement is built over integer
// coordinates.
func parseQueryPoint(line string) (x, y float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrQueryMalformed, line)
	}
	x, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrQueryMalformed, line)
	}
	y, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrQueryMalformed, line)
	}
	return x, y, nil
}
