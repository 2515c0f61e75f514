package topo

import (
	"github.com/ostankov/graphion/core"
)

// SortDFS computes a topological order of the directed graph g using
// depth-first finishing times: the reverse of the post-order is the result.
//
// Three-color marking on an explicit stack detects back-edges — an edge
// into a gray vertex means a cycle, reported as ErrCycle. Roots start in
// vertex insertion order and neighbors expand in edge insertion order, so
// the output is deterministic.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycle, context errors.
// Complexity: O(V + E) time, O(V) memory.
func SortDFS(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts)) // finishing order, reversed at the end

	// sortFrame pairs a vertex with its neighbor cursor; the explicit
	// stack replaces recursion.
	type sortFrame struct {
		id    string
		edges []core.Edge
		next  int
	}

	var stack []sortFrame
	push := func(id string) error {
		state[id] = gray
		nbs, err := g.Neighbors(id)
		if err != nil {
			return err // unreachable for vertices taken from the graph
		}
		stack = append(stack, sortFrame{id: id, edges: nbs})

		return nil
	}

	for _, root := range verts {
		if state[root] != white {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.next < len(top.edges) {
				e := top.edges[top.next]
				top.next++

				switch state[e.To] {
				case white:
					if err := push(e.To); err != nil {
						return nil, err
					}
				case gray:
					return nil, ErrCycle // back-edge; includes self-loops
				case black:
					// Already finished, every order keeps it ahead.
				}

				continue
			}

			state[top.id] = black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	// Reverse the finishing order in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
