// This file implements the Engine: run-state management, the settle/relax
// loop, and the Path/Distance/Distances result queries.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/pathkit/pathkit/graph"
)

// Engine computes single-source shortest paths over a fixed graph snapshot.
//
// An Engine owns private copies of the graph's vertex and edge sequences
// for its whole lifetime; mutating the caller's slices after New has no
// effect on it. All run-state (settled set, frontier, distances,
// predecessors) is rebuilt from scratch on every Run.
//
// Zero value is not usable; construct with New.
type Engine struct {
	vertices []graph.Vertex
	edges    []graph.Edge
	options  Options

	// Run-state, fully overwritten at the start of each Run.
	// A vertex is in at most one of settled/unsettled at any time; a vertex
	// absent from both and from dist is unreached.
	settled   map[string]struct{}
	unsettled map[string]struct{} // the frontier
	dist      map[string]int64    // vertex ID → best known distance from source
	pred      map[string]string   // vertex ID → predecessor ID; no entry for the source

	// Adjacency index, built on the first indexed run and reused after
	// (the edge snapshot never changes).
	index *adjacencyIndex
}

// New captures the graph's vertex and edge lists and returns an Engine
// ready for Run. No computation happens here.
// Complexity: O(V + E) for the copies.
func New(g graph.Graph, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		vertices: g.Vertices(),
		edges:    g.Edges(),
		options:  cfg,
	}
}

// Run computes shortest distances from source to every reachable vertex.
//
// The source does not have to appear in the graph: it is seeded explicitly
// with distance 0, and a source with no outgoing edges simply settles alone.
// Repeated Run calls (same or different source) discard all previous
// results.
//
// The only possible error is ErrFrontierCorrupted from the defensive
// invariant check; every normal condition, including an empty graph, is a
// nil-error return.
//
// Complexity: O(V·E) baseline, O((V+E) log V) with WithIndexedFrontier.
func (e *Engine) Run(source graph.Vertex) error {
	e.settled = make(map[string]struct{}, len(e.vertices))
	e.unsettled = make(map[string]struct{})
	e.dist = make(map[string]int64, len(e.vertices))
	e.pred = make(map[string]string)

	e.dist[source.ID] = 0
	e.unsettled[source.ID] = struct{}{}

	if e.options.IndexedFrontier {
		return e.runIndexed(source)
	}

	for len(e.unsettled) > 0 {
		u, ok := e.minimum()
		if !ok {
			return fmt.Errorf("%w: %d candidates", ErrFrontierCorrupted, len(e.unsettled))
		}

		delete(e.unsettled, u)
		e.settled[u] = struct{}{}

		e.relax(u)

		if e.options.Goal != "" && u == e.options.Goal {
			break
		}
	}

	return nil
}

// minimum selects the frontier vertex with the smallest tentative distance.
// Frontier members without a distance entry are treated as unbounded and
// never chosen while a bounded candidate remains. Ties go to whichever
// vertex the frontier iteration yields first.
func (e *Engine) minimum() (string, bool) {
	var (
		best     string
		bestDist int64 = math.MaxInt64
		found    bool
	)
	for id := range e.unsettled {
		d, ok := e.dist[id]
		if !ok {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}

	return best, found
}

// relax scans the full edge list for edges leaving u and attempts to
// improve each destination. Linear adjacency keeps the engine free of any
// preprocessing; WithIndexedFrontier trades memory for the indexed variant.
func (e *Engine) relax(u string) {
	for i := range e.edges {
		if e.edges[i].Source.ID != u {
			continue
		}
		e.relaxEdge(u, &e.edges[i])
	}
}

// relaxEdge applies one relaxation step along edge (u → t, w). Settled
// destinations are final and skipped; otherwise a strictly smaller
// candidate distance replaces the current one, updates the predecessor
// link, and (idempotently) inserts t into the frontier.
//
// Assumes dist[u] is final. Reports t's ID and whether it improved.
func (e *Engine) relaxEdge(u string, edge *graph.Edge) (string, bool) {
	t := edge.Destination.ID
	if _, done := e.settled[t]; done {
		return t, false
	}

	candidate := e.dist[u] + edge.Weight
	if cur, ok := e.dist[t]; ok && candidate >= cur {
		return t, false
	}

	e.dist[t] = candidate
	e.pred[t] = u
	e.unsettled[t] = struct{}{}

	return t, true
}

// Path returns the vertex IDs from the source of the last Run to target,
// inclusive, in travel order.
//
// A target with no predecessor entry yields nil: this covers both an
// unreachable target and the source itself (the zero-length path is
// reported as empty, not [source]). Distinguish the two via Distance or by
// comparing IDs. The walk is bounded by the number of predecessor links,
// so it terminates even on a corrupted chain.
//
// Complexity: O(length of the path).
func (e *Engine) Path(target graph.Vertex) []string {
	id := target.ID
	if _, ok := e.pred[id]; !ok {
		return nil
	}

	path := []string{id}
	for limit := len(e.pred); limit > 0; limit-- {
		prev, ok := e.pred[id]
		if !ok {
			break
		}
		path = append(path, prev)
		id = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distance returns the finalized cumulative weight from the source of the
// last Run to target. ok is false when target was never reached.
func (e *Engine) Distance(target graph.Vertex) (int64, bool) {
	d, ok := e.dist[target.ID]

	return d, ok
}

// Distances returns a copy of the full distance mapping of the last Run.
// Vertices absent from the map are unreached.
func (e *Engine) Distances() map[string]int64 {
	out := make(map[string]int64, len(e.dist))
	for id, d := range e.dist {
		out[id] = d
	}

	return out
}
