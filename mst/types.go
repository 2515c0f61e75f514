// Package mst computes minimum spanning trees and forests of undirected
// graphs with Kruskal's and Prim's algorithms.
// This file defines sentinel errors, options, the Result type, and the
// Compute dispatch helper.
package mst

import (
	"errors"

	"github.com/ostankov/graphion/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrNotUndirected indicates the input graph is directed; spanning
	// trees are defined over undirected graphs only.
	ErrNotUndirected = errors.New("mst: spanning trees require an undirected graph")

	// ErrEmptyGraph indicates Prim was invoked on a graph with no vertices,
	// so there is nothing to grow a tree from.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrUnknownAlgorithm is returned by Compute for an unrecognized
	// Options.Algorithm value.
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")
)

// AlgorithmKruskal selects Kruskal's algorithm (global edge sort + union-find).
const AlgorithmKruskal = "kruskal"

// AlgorithmPrim selects Prim's algorithm (grow from a root via a min-heap).
const AlgorithmPrim = "prim"

// Options configures Compute and Prim.
type Options struct {
	// Algorithm is AlgorithmKruskal or AlgorithmPrim. Used by Compute only.
	Algorithm string

	// Root is Prim's start vertex. Empty selects the first-added vertex.
	// Ignored by Kruskal.
	Root string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions selects Kruskal with no explicit root.
func DefaultOptions() Options {
	return Options{Algorithm: AlgorithmKruskal}
}

// WithAlgorithm sets the algorithm Compute dispatches to.
func WithAlgorithm(name string) Option {
	return func(o *Options) { o.Algorithm = name }
}

// WithRoot sets the start vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// Result is the outcome of a spanning tree computation.
//
// Edges are listed in selection order (the order the algorithm accepted
// them), and Weight is their sum. On a connected graph both algorithms
// produce exactly |V|-1 edges. On a disconnected graph the two algorithms
// diverge by design: Kruskal returns a minimum spanning forest covering
// every component, while Prim grows only the tree containing its root.
// Either way len(Edges) < |V|-1 signals that no single spanning tree
// exists; Spans makes that check explicit.
type Result struct {
	// Edges holds the accepted edges in selection order.
	Edges []core.Edge

	// Weight is the total weight of Edges.
	Weight int64
}

// Spans reports whether the result is a single tree covering all
// vertexCount vertices, i.e. len(Edges) == vertexCount-1.
// Meaningful for vertexCount >= 1.
func (r *Result) Spans(vertexCount int) bool {
	return len(r.Edges) == vertexCount-1
}

// Trees returns the number of trees in a spanning forest over vertexCount
// vertices: vertexCount - len(Edges). Meaningful for Kruskal results, which
// always cover every component.
func (r *Result) Trees(vertexCount int) int {
	return vertexCount - len(r.Edges)
}

// Compute runs the algorithm selected by WithAlgorithm (Kruskal by
// default), forwarding WithRoot to Prim. It is convenience scaffolding;
// Kruskal and Prim remain directly callable.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Algorithm {
	case AlgorithmKruskal:
		return Kruskal(g)
	case AlgorithmPrim:
		return Prim(g, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
