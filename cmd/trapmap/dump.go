package main

import (
	"fmt"
	"os"

	"github.com/halvorsen/trapmap"
)

// writeAdjacencyDump writes the adjacency matrix to path, creating or
// truncating the file.
func writeAdjacencyDump(m *trapmap.Map, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trapmap: opening %s: %w", path, err)
	}
	defer f.Close()
	if err := m.ExportAdjacency(f); err != nil {
		return fmt.Errorf("trapmap: exporting adjacency matrix: %w", err)
	}
	return nil
}
