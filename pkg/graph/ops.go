package graph

// Union returns the graph with the vertices and edges of both
// operands (operator +). No edges are added between the operands.
func Union(a, b *Graph) *Graph {
	g := newGraph()
	g.merge(a)
	g.merge(b)
	return g
}

// Join returns the union of both operands (operator *) plus an edge
// between every vertex of a and every vertex of b. A vertex shared by
// both operands does not get a loop.
func Join(a, b *Graph) *Graph {
	g := Union(a, b)
	for u := range a.vertexSet() {
		for v := range b.vertexSet() {
			if u != v {
				g.edges.Insert(NewEdge(u, v))
			}
		}
	}
	return g
}

// Induce returns the sub graph of g induced by the given vertex names.
// The vertex set of the result is exactly the given name set: names
// not found in g are kept as isolated vertices. Only edges of g with
// both endpoints in the name set are retained.
func Induce(g *Graph, names ...string) *Graph {
	r := newGraph()
	r.vertices.Insert(names...)
	for e := range g.edgeSet() {
		if r.vertices.HasAll(e.A, e.B) {
			r.edges.Insert(e)
		}
	}
	return r
}

func (g *Graph) Union(o *Graph) *Graph {
	return Union(g, o)
}

func (g *Graph) Join(o *Graph) *Graph {
	return Join(g, o)
}

func (g *Graph) Induce(names ...string) *Graph {
	return Induce(g, names...)
}

func (g *Graph) merge(o *Graph) {
	g.vertices = g.vertices.Union(o.vertexSet())
	g.edges = g.edges.Union(o.edgeSet())
}
