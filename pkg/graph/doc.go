// Package graph provides the static network datasets behind the IIT
// teaching visuals.
//
// # Overview
//
// Integrated Information Theory (IIT) distinguishes systems by the shape of
// their causal structure, not by raw activity. The teaching visuals make
// that point with two contrasting networks: a densely recurrent
// thalamocortical web and a collection of insulated modules. This package
// holds those networks as plain data — nodes with precomputed normalized
// positions and directed edges — with no simulation, no Φ computation, and
// no layout algorithm behind them.
//
// # Data Model
//
// A [Dataset] bundles a node list and an edge list. Each [Node] carries an
// integer ID (unique within its dataset), a position normalized to the unit
// square, and a cosmetic label. Each [Edge] references two node IDs and
// carries an opaque uuid identity used only for stable list tracking.
// Datasets are immutable values: builders return defensive copies and no
// method mutates its receiver.
//
//	ds := graph.Integrated()
//	for _, e := range ds.Edges {
//	    src, _ := ds.Node(e.Source)
//	    dst, _ := ds.Node(e.Target)
//	    _ = src.Position // normalized, scale at render time
//	    _ = dst
//	}
//
// # Builtin Fixtures
//
// Three fixtures are built once at process start and served by copy:
//
//   - [Integrated]: 6 regions, 10 edges, one component, with a reciprocal
//     long-range loop (high-Φ flavor)
//   - [Modular]: 9 nodes in three closed 3-cycles, three components
//     (low-Φ flavor)
//   - [SplitBrain]: two bridged hemispheres; the split form removes the
//     callosal edges, the halves form is two independent sub-datasets
//
// Arbitrary datasets work exactly like the fixtures: anything expressible
// as (node set, edge set) renders the same way. The io package reads and
// writes datasets as JSON for that purpose.
//
// # Integrity
//
// [Dataset.Validate] checks ID uniqueness, position range, and edge
// endpoints. Rendering never requires validation — a dangling edge is
// skipped and an out-of-range position draws off-surface — so Validate is
// for curating fixtures and vetting imported files, not a render
// precondition.
package graph
