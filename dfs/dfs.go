package dfs

import (
	"fmt"

	"github.com/ostankov/graphion/core"
)

// frame is one explicit-stack entry: a vertex plus the cursor into its
// neighbor list. Replacing recursion with these frames keeps the traversal
// safe on graphs deeper than any call stack.
type frame struct {
	id    string
	depth int
	edges []core.Edge // neighbor snapshot, insertion order
	next  int         // index of the next neighbor to examine
}

// walker bundles the graph, options and result during one DFS call.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs an iterative depth-first traversal of g starting at start.
// Neighbors are explored in edge insertion order, so the traversal is
// deterministic. With WithFullTraversal the walk restarts from every
// unvisited vertex (start is still first) and covers the whole forest.
//
// Errors: ErrGraphNil, core.ErrUnknownVertex for an absent start vertex,
// context errors under cancellation, and any error from OnVisit/OnExit.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start %q: %w", start, core.ErrUnknownVertex)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			PreOrder:  make([]string, 0, n),
			PostOrder: make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}

	if err := w.walk(start); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := w.walk(v); err != nil {
					return nil, err
				}
			}
		}
	}

	return w.res, nil
}

// walk runs one DFS tree rooted at root on the explicit frame stack.
func (w *walker) walk(root string) error {
	if err := w.discover(root, 0, ""); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
				continue
			}
			if w.res.Visited[e.To] {
				continue // covers self-loops and back-edges alike
			}
			if err := w.discover(e.To, top.depth+1, top.id); err != nil {
				return err
			}

			continue
		}

		// Neighbors exhausted: finish the vertex.
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit at %q: %w", top.id, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, top.id)
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// discover marks id visited, records pre-order bookkeeping, runs the
// OnVisit hook, and pushes a fresh frame for it.
func (w *walker) discover(id string, depth int, parent string) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return err // unreachable: id is always a known vertex
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, edges: nbs})

	return nil
}
