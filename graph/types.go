// This file declares the Vertex, Edge and Graph value types together with
// their constructors and read-only accessors.
package graph

import "github.com/google/uuid"

// Vertex represents a node in the graph.
//
// ID uniquely identifies the vertex and is the only field that participates
// in equality; Name is display-only metadata.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Name is a human-readable label. It carries no semantic meaning.
	Name string
}

// NewVertex returns a Vertex with the given identity and display name.
// Complexity: O(1)
func NewVertex(id, name string) Vertex {
	return Vertex{ID: id, Name: name}
}

// Equal reports whether v and other denote the same vertex.
// Identity is defined by ID alone: two vertices with equal IDs but
// different Names are the same vertex.
func (v Vertex) Equal(other Vertex) bool {
	return v.ID == other.ID
}

// Edge represents a directed, weighted connection Source → Destination.
// No implicit reverse edge exists; model an undirected link as two edges.
//
// Weight is expected to be ≥ 0. Negative weights are out of contract for
// shortest-path computation and are not validated here.
type Edge struct {
	// ID uniquely identifies this edge.
	ID string

	// Source is the tail vertex of the edge.
	Source Vertex

	// Destination is the head vertex of the edge.
	Destination Vertex

	// Weight is the non-negative traversal cost.
	Weight int64
}

// NewEdge returns a directed Edge from source to destination with the given
// identity and weight.
// Complexity: O(1)
func NewEdge(id string, source, destination Vertex, weight int64) Edge {
	return Edge{ID: id, Source: source, Destination: destination, Weight: weight}
}

// Connect returns a directed Edge from source to destination with a freshly
// generated UUID as its identity. Use it when edges have no natural key.
// Complexity: O(1)
func Connect(source, destination Vertex, weight int64) Edge {
	return Edge{ID: uuid.NewString(), Source: source, Destination: destination, Weight: weight}
}

// Graph is an immutable snapshot of an ordered vertex sequence and an
// ordered edge sequence.
//
// No structural invariant is enforced: an edge may reference a vertex that
// is absent from the vertex list, vertex IDs may repeat, and self-loops are
// permitted. Consumers that only walk the edge list (such as the
// shortest-path engine) are unaffected by any of these.
type Graph struct {
	vertices []Vertex
	edges    []Edge
}

// New builds a Graph from the given sequences. Both slices are copied, so
// the caller retains ownership of its arguments.
// Complexity: O(V + E)
func New(vertices []Vertex, edges []Edge) Graph {
	g := Graph{
		vertices: make([]Vertex, len(vertices)),
		edges:    make([]Edge, len(edges)),
	}
	copy(g.vertices, vertices)
	copy(g.edges, edges)

	return g
}

// Vertices returns a copy of the vertex sequence in construction order.
// Complexity: O(V)
func (g Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edge sequence in construction order.
// Complexity: O(E)
func (g Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Order returns the number of vertices.
func (g Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g Graph) Size() int { return len(g.edges) }
