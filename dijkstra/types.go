// This file declares the sentinel errors and functional options of the
// shortest-path engine.
package dijkstra

import (
	"errors"

	"github.com/pathkit/pathkit/graph"
)

// Sentinel errors returned by the engine.
var (
	// ErrFrontierCorrupted indicates that the frontier was non-empty but no
	// minimum-distance vertex could be selected. This is a defensive
	// invariant check: it signals an implementation bug, never bad input.
	ErrFrontierCorrupted = errors.New("dijkstra: no selectable minimum in non-empty frontier")
)

// Options configures the behavior of an Engine.
//
// IndexedFrontier – drive minimum selection with a precomputed adjacency
// index and an int-keyed min-heap instead of linear scans. Final distances
// are identical either way; only the tie order among equal-cost vertices
// may differ.
//
// Goal – ID of a vertex whose settlement stops the run early. Distances of
// vertices settled up to and including the goal are final and identical to
// a full run; vertices still on the frontier keep their tentative (possibly
// improvable) distances and everything else stays unreached. The empty
// string (default) disables early termination and the run proceeds to the
// full fixed point.
type Options struct {
	IndexedFrontier bool
	Goal            string
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: linear-scan frontier,
// no early termination.
func DefaultOptions() Options {
	return Options{}
}

// WithIndexedFrontier enables the adjacency index and heap-based frontier.
// Use it for large or repeatedly queried graphs; results are unchanged.
func WithIndexedFrontier() Option {
	return func(o *Options) {
		o.IndexedFrontier = true
	}
}

// WithGoal stops a run as soon as target settles. Queries for vertices
// settled by then behave exactly as after a full run; frontier vertices
// expose tentative distances and unvisited ones report unreached. A target
// with an empty ID disables the option.
func WithGoal(target graph.Vertex) Option {
	return func(o *Options) {
		o.Goal = target.ID
	}
}
