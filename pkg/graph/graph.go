package graph

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"k8s.io/apimachinery/pkg/util/sets"
)

// ReservedSymbols are the runes which cannot be part of a vertex name.
const ReservedSymbols = "+*()"

// Edge is an unordered pair of two distinct vertices.
// It is always kept in normalized form (A < B), so that
// the edge between a and b is identical to the one between b and a.
type Edge struct {
	A string
	B string
}

// NewEdge returns the normalized edge between a and b.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

func (e Edge) String() string {
	return e.A + "-" + e.B
}

// Has checks whether v is an endpoint of the edge.
func (e Edge) Has(v string) bool {
	return e.A == v || e.B == v
}

func compareEdges(a, b Edge) int {
	if c := strings.Compare(a.A, b.A); c != 0 {
		return c
	}
	return strings.Compare(a.B, b.B)
}

////////////////////////////////////////////////////////////////////////////////

type Graph struct {
	vertices sets.Set[string]
	edges    sets.Set[Edge]
}

func newGraph() *Graph {
	return &Graph{
		vertices: sets.New[string](),
		edges:    sets.New[Edge](),
	}
}

// Empty returns a graph without vertices.
func Empty() *Graph {
	return newGraph()
}

// CheckName checks whether name can be used as vertex name.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidVertex)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || strings.ContainsRune(ReservedSymbols, r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidVertex, name, string(r))
		}
	}
	return nil
}

// Vertex returns a graph consisting of the single vertex name.
func Vertex(name string) (*Graph, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	g := newGraph()
	g.vertices.Insert(name)
	return g, nil
}

// New creates a graph from explicit vertex and edge lists.
// Every edge must connect two distinct vertices of the vertex list.
func New(vertices []string, edges ...Edge) (*Graph, error) {
	g := newGraph()
	for _, v := range vertices {
		if err := CheckName(v); err != nil {
			return nil, err
		}
		g.vertices.Insert(v)
	}
	for _, e := range edges {
		if e.A == e.B {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e)
		}
		for _, v := range []string{e.A, e.B} {
			if !g.vertices.Has(v) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, v)
			}
		}
		g.edges.Insert(NewEdge(e.A, e.B))
	}
	return g, nil
}

// Vertices returns the sorted vertex names.
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}
	return sets.List(g.vertices)
}

// Edges returns the edges ordered by their endpoints.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	edges := g.edges.UnsortedList()
	slices.SortFunc(edges, compareEdges)
	return edges
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}
	return g.vertices.Len()
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}
	return g.edges.Len()
}

func (g *Graph) HasVertex(v string) bool {
	if g == nil {
		return false
	}
	return g.vertices.Has(v)
}

func (g *Graph) HasEdge(a, b string) bool {
	if g == nil || a == b {
		return false
	}
	return g.edges.Has(NewEdge(a, b))
}

// Neighbors returns the sorted names of the vertices adjacent to v.
func (g *Graph) Neighbors(v string) []string {
	n := sets.New[string]()
	for e := range g.edgeSet() {
		switch v {
		case e.A:
			n.Insert(e.B)
		case e.B:
			n.Insert(e.A)
		}
	}
	return sets.List(n)
}

// Equal checks for identical vertex and edge sets.
func (g *Graph) Equal(o *Graph) bool {
	return g.vertexSet().Equal(o.vertexSet()) && g.edgeSet().Equal(o.edgeSet())
}

func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(strings.Join(g.Vertices(), ", "))
	if g.Size() > 0 {
		b.WriteString(" | ")
		sep := ""
		for _, e := range g.Edges() {
			b.WriteString(sep)
			b.WriteString(e.String())
			sep = ", "
		}
	}
	b.WriteString("}")
	return b.String()
}

func (g *Graph) vertexSet() sets.Set[string] {
	if g == nil {
		return nil
	}
	return g.vertices
}

func (g *Graph) edgeSet() sets.Set[Edge] {
	if g == nil {
		return nil
	}
	return g.edges
}
