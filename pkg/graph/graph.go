package graph

import (
	"errors"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/CongLeSolutionX/IIT-Neurobiological-Applications/pkg/geom"
)

var (
	// ErrDuplicateNodeID is returned by [Dataset.Validate] when two nodes
	// share the same ID. Node IDs must be unique within a dataset.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDuplicateEdgeID is returned by [Dataset.Validate] when two edges
	// share the same ID. Edge IDs exist only for stable list identity, but
	// that identity must be unambiguous.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrPositionOutOfRange is returned by [Dataset.Validate] when a node
	// position falls outside the unit square. Rendering such a node is
	// harmless (it draws off-surface), but curated datasets keep every
	// position inside [0, 1] on both axes.
	ErrPositionOutOfRange = errors.New("node position outside [0, 1]")

	// ErrUnknownEndpoint is returned by [Dataset.Validate] when an edge
	// references a node ID that doesn't exist. Renderers tolerate such
	// edges by skipping them; Validate flags them for curation.
	ErrUnknownEndpoint = errors.New("edge references unknown node")
)

// Node is a single network region with a precomputed position.
//
// Positions are normalized to the unit square (origin top-left, x rightward,
// y downward) so the same dataset renders at any surface size. Labels are
// cosmetic display strings and need not be unique.
type Node struct {
	ID       int        `json:"id"`              // Unique within a dataset
	Position geom.Point `json:"position"`        // Normalized [0,1] coordinates
	Label    string     `json:"label,omitempty"` // Display name, not an identifier
}

// Edge is a directed connection between two nodes, referenced by ID.
//
// The edge's own ID is opaque: it carries no domain meaning and exists only
// so hosts can track edges stably across list updates. Direction is kept as
// data; renderers are free to draw undirected visuals.
type Edge struct {
	ID     string `json:"id"`     // Opaque identity (uuid), never interpreted
	Source int    `json:"source"` // Node.ID of the origin
	Target int    `json:"target"` // Node.ID of the destination
}

// NewEdge creates an edge between two node IDs with a fresh unique identity.
func NewEdge(source, target int) Edge {
	return Edge{ID: uuid.NewString(), Source: source, Target: target}
}

// Dataset is an immutable bundle of nodes and edges with a display name.
//
// Datasets are plain values: builders hand out defensive copies, and nothing
// in this package mutates a dataset after construction. Description carries
// the teaching flavor text shown next to the rendered network.
type Dataset struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Nodes       []Node `json:"nodes"`
	Edges       []Edge `json:"edges"`
}

// Clone returns a deep copy of the dataset. Node and Edge are value types,
// so cloning the slices is sufficient.
func (d Dataset) Clone() Dataset {
	d.Nodes = slices.Clone(d.Nodes)
	d.Edges = slices.Clone(d.Edges)
	return d
}

// NodeIndex builds an ID → node lookup map. Renderers use it to resolve
// edge endpoints; an edge whose endpoint is missing from the index is
// skipped, not an error.
func (d Dataset) NodeIndex() map[int]Node {
	idx := make(map[int]Node, len(d.Nodes))
	for _, n := range d.Nodes {
		idx[n.ID] = n
	}
	return idx
}

// Node returns the node with the given ID and true, or the zero node and
// false if no such node exists.
func (d Dataset) Node(id int) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeCount returns the number of nodes in the dataset.
func (d Dataset) NodeCount() int { return len(d.Nodes) }

// EdgeCount returns the number of edges in the dataset.
func (d Dataset) EdgeCount() int { return len(d.Edges) }

// Validate checks dataset integrity and returns nil if valid.
// It verifies three constraints:
//
//  1. Node IDs and edge IDs are unique
//  2. Every node position lies inside the unit square
//  3. Every edge endpoint references an existing node
//
// Rendering never requires a valid dataset: out-of-range positions draw
// off-surface and dangling edges are skipped. Validate exists so curated
// fixtures and imported files can be checked up front.
func (d Dataset) Validate() error {
	seen := make(map[int]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if seen[n.ID] {
			return ErrDuplicateNodeID
		}
		seen[n.ID] = true
		if n.Position.X < 0 || n.Position.X > 1 || n.Position.Y < 0 || n.Position.Y > 1 {
			return ErrPositionOutOfRange
		}
	}

	edgeIDs := make(map[string]bool, len(d.Edges))
	for _, e := range d.Edges {
		if e.ID != "" {
			if edgeIDs[e.ID] {
				return ErrDuplicateEdgeID
			}
			edgeIDs[e.ID] = true
		}
		if !seen[e.Source] || !seen[e.Target] {
			return ErrUnknownEndpoint
		}
	}
	return nil
}

// Subset returns a new dataset containing only the named nodes and the
// edges whose endpoints both survive. Node and edge order is preserved,
// as are edge identities, so hosts can correlate subsets with the parent.
func (d Dataset) Subset(ids ...int) Dataset {
	keep := make(map[int]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	sub := Dataset{Name: d.Name, Description: d.Description}
	for _, n := range d.Nodes {
		if keep[n.ID] {
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	for _, e := range d.Edges {
		if keep[e.Source] && keep[e.Target] {
			sub.Edges = append(sub.Edges, e)
		}
	}
	return sub
}

// Components returns the weakly connected components of the dataset as
// sorted node ID slices. Edge direction is ignored; an edge with a missing
// endpoint connects nothing. Components are ordered by their smallest
// member, so the result is deterministic for a given dataset.
//
// This is connectivity analysis over a fixed node set, not layout: it is
// used to describe datasets (one integrated web vs. three insulated
// islands), never to compute positions.
func (d Dataset) Components() [][]int {
	idx := d.NodeIndex()
	adj := make(map[int][]int, len(d.Nodes))
	for _, e := range d.Edges {
		if _, ok := idx[e.Source]; !ok {
			continue
		}
		if _, ok := idx[e.Target]; !ok {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	visited := make(map[int]bool, len(d.Nodes))
	var comps [][]int
	for _, start := range d.Nodes {
		if visited[start.ID] {
			continue
		}
		var comp []int
		queue := []int{start.ID}
		visited[start.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			comp = append(comp, id)
			for _, next := range adj[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps
}

// Connected reports whether the dataset forms a single weakly connected
// component. Empty datasets are trivially connected.
func (d Dataset) Connected() bool {
	return len(d.Nodes) == 0 || len(d.Components()) == 1
}

// HasEdge reports whether a directed edge source → target exists.
func (d Dataset) HasEdge(source, target int) bool {
	for _, e := range d.Edges {
		if e.Source == source && e.Target == target {
			return true
		}
	}
	return false
}

// ReciprocalPairs returns the unordered node ID pairs connected in both
// directions, each pair as (smaller, larger) ID. Reciprocal long-range
// connections are the signature of re-entrant architectures, so dataset
// descriptions and tests both lean on this.
func (d Dataset) ReciprocalPairs() [][2]int {
	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for _, e := range d.Edges {
		if e.Source == e.Target {
			continue
		}
		key := [2]int{min(e.Source, e.Target), max(e.Source, e.Target)}
		if seen[key] {
			continue
		}
		if d.HasEdge(e.Target, e.Source) {
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}
