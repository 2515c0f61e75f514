package dfs

import (
	"github.com/ostankov/graphion/core"
)

// HasCycle reports whether g contains a cycle. It works on directed and
// undirected graphs with three-color marking on an explicit stack:
//
//   - directed: an edge into a gray (on-stack) vertex is a back-edge.
//   - undirected: same, except the single edge leading back to the
//     immediate parent is not a cycle. A second parallel edge to the
//     parent is one, as is any self-loop.
//
// A nil graph is trivially cycle-free.
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, nil
	}

	state := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] != white {
			continue
		}
		found, err := scanForCycle(g, v, state)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// cycleFrame is a stack entry for cycle scanning. parentEdgeUsed tracks
// whether the one legitimate edge back to the parent was already consumed,
// so parallel parent edges in undirected graphs still register as cycles.
type cycleFrame struct {
	id             string
	parent         string
	edges          []core.Edge
	next           int
	parentEdgeUsed bool
}

// scanForCycle explores one DFS tree rooted at root and reports whether a
// back-edge exists inside it.
func scanForCycle(g *core.Graph, root string, state map[string]int) (bool, error) {
	push := func(stack []cycleFrame, id, parent string) ([]cycleFrame, error) {
		state[id] = gray
		nbs, err := g.Neighbors(id)
		if err != nil {
			return stack, err // unreachable for vertices taken from the graph
		}

		return append(stack, cycleFrame{id: id, parent: parent, edges: nbs}), nil
	}

	stack, err := push(nil, root, "")
	if err != nil {
		return false, err
	}

	undirected := !g.Directed()
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.edges) {
			state[top.id] = black
			stack = stack[:len(stack)-1]

			continue
		}
		e := top.edges[top.next]
		top.next++

		if e.To == top.id {
			return true, nil // self-loop
		}
		if undirected && e.To == top.parent && !top.parentEdgeUsed {
			top.parentEdgeUsed = true

			continue // the tree edge we came in on, seen from the other side
		}

		switch state[e.To] {
		case white:
			if stack, err = push(stack, e.To, top.id); err != nil {
				return false, err
			}
		case gray:
			return true, nil // back-edge
		case black:
			// Fully explored, nothing new behind it.
		}
	}

	return false, nil
}
