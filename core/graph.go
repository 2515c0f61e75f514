package core

import (
	"fmt"
	"strings"
)

// AddVertex registers a vertex under the given ID.
// Adding an existing vertex is a no-op, so building code may call it
// unconditionally. Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.index[id]; ok {
		return nil // idempotent
	}
	g.index[id] = struct{}{}
	g.order = append(g.order, id)

	return nil
}

// AddEdge records an edge from 'from' to 'to' with the given weight.
//
// Both endpoints must already exist: unlike implicit-vertex graph builders,
// an absent endpoint is reported as ErrUnknownVertex rather than silently
// created, so a typo in an ID surfaces at the call site.
//
// On an unweighted graph the weight must be 0 or DefaultWeight (both store
// DefaultWeight); anything else returns ErrBadWeight. On an undirected graph
// the edge is stored once and reported from both endpoints by Neighbors.
// Self-loops and parallel edges are permitted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.index[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	if _, ok := g.index[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}
	if !g.weighted {
		if weight != 0 && weight != DefaultWeight {
			return fmt.Errorf("%w: %d", ErrBadWeight, weight)
		}
		weight = DefaultWeight
	}

	e := Edge{From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacent[from] = append(g.adjacent[from], e)
	// Mirror undirected edges so Neighbors(to) sees them; self-loops are
	// incident to their vertex exactly once.
	if !g.directed && from != to {
		g.adjacent[to] = append(g.adjacent[to], Edge{From: to, To: from, Weight: weight})
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether at least one edge from 'from' to 'to' exists
// (in either orientation for undirected graphs).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, e := range g.adjacent[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the edges incident to id, oriented away from it
// (every returned Edge has From == id), in insertion order.
// Returns ErrUnknownVertex if id is absent.
//
// The slice is shared with the graph: callers must treat it as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return g.adjacent[id], nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy. Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge exactly once, in insertion order, regardless of
// direction or orientation. The returned slice is a copy.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns |E| (parallel edges counted individually, undirected
// edges counted once). Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// String renders the adjacency list one vertex per line, e.g.
//
//	A -> [B(1), C(4)]
//	B -> [A(1)]
//
// Weights are printed only for weighted graphs. Complexity: O(V+E).
func (g *Graph) String() string {
	var b strings.Builder
	for _, v := range g.order {
		b.WriteString(v)
		b.WriteString(" -> [")
		for i, e := range g.adjacent[v] {
			if i > 0 {
				b.WriteString(", ")
			}
			if g.weighted {
				fmt.Fprintf(&b, "%s(%d)", e.To, e.Weight)
			} else {
				b.WriteString(e.To)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
