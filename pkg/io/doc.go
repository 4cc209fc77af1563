// Package io provides JSON import and export for network datasets.
//
// # Overview
//
// The builtin fixtures cover the teaching scenes, but the data model is
// open: anything expressible as (node set, edge set) renders the same way.
// This package serializes datasets so external tools can produce them and
// the CLI can consume them.
//
// # JSON Format
//
// A dataset is a JSON object with two required arrays and optional display
// strings:
//
//	{
//	  "name": "ring",
//	  "description": "Four regions in a loop.",
//	  "nodes": [
//	    {"id": 1, "position": {"x": 0.5, "y": 0.1}, "label": "North"},
//	    {"id": 2, "position": {"x": 0.9, "y": 0.5}, "label": "East"}
//	  ],
//	  "edges": [
//	    {"id": "n-e", "source": 1, "target": 2}
//	  ]
//	}
//
// Node ids are integers, unique within the file. Positions are normalized
// to [0, 1] on both axes with the origin at the top-left. Labels are
// cosmetic. Edge ids are optional; edges without one are assigned a fresh
// uuid on import so hosts always see stable list identities.
//
// # Import
//
// Use [ImportJSON] to read a dataset from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	ds, err := io.ImportJSON("ring.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Import validates the decoded dataset (unique ids, positions in range,
// resolvable edge endpoints) so problems surface at the file boundary
// rather than as odd-looking renders.
//
// # Export
//
// Use [ExportJSON] to write a dataset to a file, or [WriteJSON] to write to
// any io.Writer. Output is indented and round-trips through [ReadJSON]
// identically, edge ids included.
package io
