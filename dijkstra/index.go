// This file implements the indexed frontier: a one-time adjacency index
// over dense vertex slots and a heap-driven settle/relax loop.
package dijkstra

import (
	"github.com/rhartert/yagh"

	"github.com/pathkit/pathkit/graph"
)

// adjacencyIndex maps vertex IDs to dense integer slots and records the
// outgoing edge positions of every slot. Slots are assigned in first-seen
// order: the vertex list first, then edge endpoints, so dangling endpoints
// (edges naming a vertex absent from the vertex list) get slots too.
type adjacencyIndex struct {
	ids  []string       // slot → vertex ID
	slot map[string]int // vertex ID → slot
	out  [][]int        // slot → positions of outgoing edges in the edge list
}

func buildIndex(vertices []graph.Vertex, edges []graph.Edge) *adjacencyIndex {
	idx := &adjacencyIndex{
		slot: make(map[string]int, len(vertices)),
	}

	assign := func(id string) int {
		if s, ok := idx.slot[id]; ok {
			return s
		}
		s := len(idx.ids)
		idx.slot[id] = s
		idx.ids = append(idx.ids, id)
		idx.out = append(idx.out, nil)

		return s
	}

	for i := range vertices {
		assign(vertices[i].ID)
	}
	for i := range edges {
		s := assign(edges[i].Source.ID)
		assign(edges[i].Destination.ID)
		idx.out[s] = append(idx.out[s], i)
	}

	return idx
}

// runIndexed is the heap-driven variant of the Run loop. The changeable
// int-keyed min-heap performs true decrease-key on improvement, so every
// popped entry is fresh and settles immediately. Distances match the
// baseline loop exactly; only the tie order among equal-cost vertices may
// differ.
func (e *Engine) runIndexed(source graph.Vertex) error {
	if e.index == nil {
		e.index = buildIndex(e.vertices, e.edges)
	}
	idx := e.index

	src, ok := idx.slot[source.ID]
	if !ok {
		// Source appears nowhere in the graph: it settles alone with
		// distance 0 and nothing can be relaxed.
		delete(e.unsettled, source.ID)
		e.settled[source.ID] = struct{}{}

		return nil
	}

	h := yagh.New[int64](len(idx.ids))
	h.Put(src, 0)

	for h.Size() > 0 {
		entry, _ := h.Pop()
		u := idx.ids[entry.Elem]

		delete(e.unsettled, u)
		e.settled[u] = struct{}{}

		for _, ei := range idx.out[entry.Elem] {
			if t, improved := e.relaxEdge(u, &e.edges[ei]); improved {
				h.Put(idx.slot[t], e.dist[t])
			}
		}

		if e.options.Goal != "" && u == e.options.Goal {
			break
		}
	}

	return nil
}
