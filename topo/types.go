// Package topo provides topological ordering of directed graphs — via
// depth-first finishing times and via Kahn's in-degree algorithm — plus the
// longest (critical) path on a DAG.
//
// Both sorting algorithms accept exactly the same inputs and fail the same
// way: ErrNotDirected for undirected graphs and ErrCycle when no linear
// order exists. Their outputs may legitimately differ; any order where
// every edge points forward is correct.
package topo

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrNotDirected indicates topological ordering was requested for an
	// undirected graph.
	ErrNotDirected = errors.New("topo: topological sort requires a directed graph")

	// ErrCycle indicates the graph is not a DAG: no topological order
	// exists.
	ErrCycle = errors.New("topo: graph contains a cycle")

	// ErrEmptyGraph indicates LongestPath was invoked on a graph with no
	// vertices.
	ErrEmptyGraph = errors.New("topo: graph has no vertices")
)

// Vertex visitation states for the DFS-based sort.
const (
	white = iota // undiscovered
	gray         // on the traversal stack
	black        // finished
)

// Option configures optional behavior of the sorting functions.
type Option func(*Options)

// Options currently only carries cancellation.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// PathResult is the outcome of LongestPath: the heaviest path through the
// DAG and its total distance.
type PathResult struct {
	// Distance is the summed edge weight along Path (0 for a single
	// vertex).
	Distance int64

	// Path lists the vertices from the path's source to its sink.
	Path []string
}
