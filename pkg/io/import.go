package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/graph"
)

// ReadJSON decodes a JSON dataset from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays (see the
// package documentation for the full format). Edges without an "id" field
// receive a fresh uuid so every imported edge has a stable list identity.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A node or edge ID is duplicated
//   - A node position falls outside the unit square
//   - An edge references an unknown node ID
//
// Validation errors wrap the sentinel errors from the graph package, so
// callers can check them with errors.Is. ReadJSON does not close r.
func ReadJSON(r io.Reader) (graph.Dataset, error) {
	var ds graph.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return graph.Dataset{}, fmt.Errorf("decode: %w", err)
	}

	for i := range ds.Edges {
		if ds.Edges[i].ID == "" {
			ds.Edges[i].ID = uuid.NewString()
		}
	}

	if err := ds.Validate(); err != nil {
		return graph.Dataset{}, fmt.Errorf("dataset %q: %w", ds.Name, err)
	}
	return ds, nil
}

// ImportJSON reads a JSON file at path and returns the decoded dataset.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context,
// and include the same validation errors as [ReadJSON].
func ImportJSON(path string) (graph.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ReadJSON(f)
	if err != nil {
		return graph.Dataset{}, fmt.Errorf("import %s: %w", path, err)
	}
	return ds, nil
}
