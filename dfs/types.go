// Package dfs implements depth-first traversal and cycle detection over a
// core.Graph.
//
// The traversal is iterative: it keeps its own stack of (vertex, neighbor
// cursor) frames instead of recursing, so the depth of the graph is limited
// by heap memory rather than by call-stack size.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Vertex visitation states for cycle detection.
const (
	white = iota // not yet discovered
	gray         // on the traversal stack
	black        // fully explored
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all of a vertex's descendants
	// are explored (post-order). Returning an error aborts the traversal.
	OnExit func(id string) error

	// FilterNeighbor, if non-nil, is consulted before descending into a
	// neighbor; return false to skip that edge.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts the walk from every still-unvisited vertex,
	// covering disconnected components as a forest.
	FullTraversal bool
}

// DefaultOptions returns Options with a Background context, no hooks, no
// filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal makes DFS restart from every unvisited vertex in
// insertion order, so disconnected components are covered too.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// PreOrder records vertices in discovery order.
	PreOrder []string

	// PostOrder records vertices in finishing order; its reverse is a
	// topological order on a DAG (package topo builds on this shape).
	PostOrder []string

	// Depth maps each reached vertex to its distance from its tree root.
	Depth map[string]int

	// Parent maps each reached vertex (except tree roots) to the vertex
	// it was discovered from.
	Parent map[string]string

	// Visited flags every vertex reached by the traversal.
	Visited map[string]bool
}
