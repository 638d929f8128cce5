package graph_test

import (
	"encoding/json"

	"github.com/go-test/deep"
	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/zykov/pkg/graph"
)

func V(n string) *graph.Graph {
	return Must(graph.Vertex(n))
}

var _ = Describe("Graph", func() {
	var a, b, c *graph.Graph

	BeforeEach(func() {
		a, b, c = V("a"), V("b"), V("c")
	})

	Context("vertex", func() {
		It("creates singleton", func() {
			Expect(a.Vertices()).To(Equal([]string{"a"}))
			Expect(a.Edges()).To(BeEmpty())
		})

		It("accepts multi character names", func() {
			Expect(V("node_1").Vertices()).To(Equal([]string{"node_1"}))
		})

		It("rejects invalid names", func() {
			for _, n := range []string{"", "a b", "a+b", "a*", "(a", "a)"} {
				_, err := graph.Vertex(n)
				Expect(err).To(MatchError(graph.ErrInvalidVertex), n)
			}
		})
	})

	Context("union", func() {
		It("merges singletons without edges", func() {
			g := graph.Union(a, b)
			Expect(g.Order()).To(Equal(2))
			Expect(g.Size()).To(Equal(0))
		})

		It("is commutative", func() {
			x := graph.Join(a, b)
			Expect(graph.Union(x, c).Equal(graph.Union(c, x))).To(BeTrue())
		})

		It("is associative", func() {
			x := graph.Join(a, b)
			y := graph.Join(b, c)
			z := V("d")
			Expect(graph.Union(graph.Union(x, y), z).Equal(graph.Union(x, graph.Union(y, z)))).To(BeTrue())
		})

		It("does not modify operands", func() {
			graph.Union(a, b)
			Expect(a.Vertices()).To(Equal([]string{"a"}))
			Expect(b.Vertices()).To(Equal([]string{"b"}))
		})

		It("deduplicates vertices", func() {
			Expect(graph.Union(a, a).Equal(a)).To(BeTrue())
		})
	})

	Context("join", func() {
		It("connects singletons", func() {
			g := graph.Join(a, b)
			Expect(g.Order()).To(Equal(2))
			Expect(g.Edges()).To(Equal([]graph.Edge{{"a", "b"}}))
			Expect(g.HasEdge("b", "a")).To(BeTrue())
		})

		It("is commutative", func() {
			x := graph.Union(a, b)
			y := graph.Join(c, V("d"))
			Expect(graph.Join(x, y).Equal(graph.Join(y, x))).To(BeTrue())
		})

		It("is associative", func() {
			x := graph.Union(a, b)
			y := c
			z := graph.Union(V("d"), V("e"))
			Expect(graph.Join(graph.Join(x, y), z).Equal(graph.Join(x, graph.Join(y, z)))).To(BeTrue())
		})

		It("connects only across operands", func() {
			g := graph.Join(graph.Union(a, b), c)
			Expect(g.Edges()).To(Equal([]graph.Edge{{"a", "c"}, {"b", "c"}}))
		})

		It("creates no loops for shared vertices", func() {
			x := graph.Union(a, b)
			g := graph.Join(x, x)
			for _, e := range g.Edges() {
				Expect(e.A).NotTo(Equal(e.B))
			}
			Expect(g.Edges()).To(Equal([]graph.Edge{{"a", "b"}}))
			Expect(graph.Join(a, a).Size()).To(Equal(0))
		})
	})

	Context("induce", func() {
		It("keeps edges between selected vertices", func() {
			g := graph.Join(graph.Join(a, b), c).Induce("a", "c")
			Expect(g.Vertices()).To(Equal([]string{"a", "c"}))
			Expect(g.Edges()).To(Equal([]graph.Edge{{"a", "c"}}))
		})

		It("keeps unknown names as isolated vertices", func() {
			g := graph.Join(a, b).Induce("a", "x", "a")
			Expect(g.Vertices()).To(Equal([]string{"a", "x"}))
			Expect(g.Size()).To(Equal(0))
		})
	})

	Context("construction", func() {
		It("normalizes edges", func() {
			g := Must(graph.New([]string{"b", "a"}, graph.Edge{"b", "a"}, graph.Edge{"a", "b"}))
			Expect(g.Equal(graph.Join(a, b))).To(BeTrue())
		})

		It("rejects loops", func() {
			_, err := graph.New([]string{"a"}, graph.Edge{"a", "a"})
			Expect(err).To(MatchError(graph.ErrSelfLoop))
		})

		It("rejects unknown endpoints", func() {
			_, err := graph.New([]string{"a"}, graph.Edge{"a", "b"})
			Expect(err).To(MatchError(graph.ErrUnknownEndpoint))
		})
	})

	Context("accessors", func() {
		It("lists neighbors", func() {
			g := graph.Union(graph.Join(a, graph.Union(b, c)), V("d"))
			Expect(g.Neighbors("a")).To(Equal([]string{"b", "c"}))
			Expect(g.Neighbors("b")).To(Equal([]string{"a"}))
			Expect(g.Neighbors("d")).To(BeEmpty())
		})

		It("renders string", func() {
			Expect(graph.Union(graph.Join(a, b), c).String()).To(Equal("{a, b, c | a-b}"))
			Expect(graph.Empty().String()).To(Equal("{}"))
		})
	})

	Context("json", func() {
		It("marshals", func() {
			data := Must(json.Marshal(graph.Union(graph.Join(a, b), c)))
			Expect(string(data)).To(MatchJSON(`{"vertices":["a","b","c"],"edges":[["a","b"]]}`))
		})

		It("marshals empty graph", func() {
			data := Must(json.Marshal(graph.Empty()))
			Expect(string(data)).To(MatchJSON(`{"vertices":[],"edges":[]}`))
		})

		It("unmarshals", func() {
			g := graph.Join(graph.Union(a, b), c)
			var r graph.Graph
			MustBeSuccessful(json.Unmarshal(Must(json.Marshal(g)), &r))
			Expect(deep.Equal(r.Edges(), g.Edges())).To(BeNil())
			Expect(r.Equal(g)).To(BeTrue())
		})

		It("fingerprints", func() {
			x := graph.Join(a, graph.Union(b, c))
			y := graph.Join(graph.Union(c, b), a)
			Expect(x.Fingerprint()).To(Equal(y.Fingerprint()))
			Expect(x.Fingerprint()).NotTo(Equal(graph.Union(x, V("d")).Fingerprint()))
		})
	})
})
