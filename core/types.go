// Package core defines the Graph and Edge types shared by every algorithm
// package in graphion.
//
// A Graph is adjacency-list backed, holds string vertex IDs, and preserves
// both vertex and edge insertion order. That ordering is part of the public
// contract: algorithm packages use it to break ties deterministically.
//
// Errors:
//
//	ErrEmptyVertexID — vertex ID is the empty string.
//	ErrUnknownVertex — an operation referenced a vertex absent from the graph.
//	ErrBadWeight     — an explicit weight other than 0 or 1 on an unweighted graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownVertex indicates an operation referenced a vertex that is
	// absent from the vertex set.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrBadWeight indicates a non-default weight was supplied to an
	// unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// DefaultWeight is the weight recorded for every edge of an unweighted
// graph, so hop-counting and spanning-tree algorithms can treat weighted
// and unweighted graphs uniformly.
const DefaultWeight int64 = 1

// Edge is a connection between two vertices.
//
// For undirected graphs the orientation From→To records how the edge was
// inserted; the edge itself is symmetric and stored once.
type Edge struct {
	// From is the source vertex ID (insertion orientation for undirected).
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost; DefaultWeight on unweighted graphs.
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes every edge one-way From→To.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows caller-chosen edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph structure.
//
// Self-loops and parallel edges are always permitted; individual algorithms
// decide how to treat them (a spanning tree, for instance, never contains a
// self-loop). A Graph is not safe for concurrent use, and callers must not
// mutate it while an algorithm traverses it.
type Graph struct {
	directed bool // true: edges are one-way From→To
	weighted bool // true: AddEdge accepts arbitrary weights

	order    []string            // vertex IDs in insertion order
	index    map[string]struct{} // vertex membership
	adjacent map[string][]Edge   // per-vertex incident edges, From == that vertex
	edges    []Edge              // every edge once, insertion order
}

// New creates an empty Graph. By default the graph is undirected and
// unweighted; see WithDirected and WithWeighted.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		index:    make(map[string]struct{}),
		adjacent: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry caller-chosen weights.
func (g *Graph) Weighted() bool { return g.weighted }
