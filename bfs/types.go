// Package bfs provides breadth-first traversal over a core.Graph,
// reporting visit order, hop distances, and parent links, plus shortest
// unweighted paths and connected components built on top of it.
package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by Result.PathTo when the destination was
	// never reached from the start vertex.
	ErrNoPath = errors.New("bfs: no path to destination")

	// ErrDirectedGraph is returned by ConnectedComponents, which is
	// defined for undirected graphs only.
	ErrDirectedGraph = errors.New("bfs: connected components require an undirected graph")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to Background.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued, with its hop depth.
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond that many hops from the
	// start. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge from→to considered for enqueueing.
	FilterNeighbor func(from, to string) bool
}

// DefaultOptions returns Options with a Background context, no depth
// limit, no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked per visited vertex; an error
// return stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d hops from the start; 0 disables
// the limit. Negative values are treated as 0.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d > 0 {
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a breadth-first traversal.
type Result struct {
	// Order lists vertices in visit sequence (non-decreasing depth).
	Order []string

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int

	// Parent maps each reached vertex (except the start) to its
	// predecessor in the BFS tree.
	Parent map[string]string
}

// PathTo reconstructs the shortest unweighted path from the traversal's
// start vertex to dest by walking Parent links. Returns ErrNoPath when
// dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrNoPath
	}

	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse into start → dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
