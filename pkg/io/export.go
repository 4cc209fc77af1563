package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// WriteJSON encodes a dataset as indented JSON and writes it to w.
// The output includes all nodes, edges, and edge identities, and can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(ds graph.Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(ds graph.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(ds, f)
}
