package command_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/vfs/pkg/memoryfs"

	"github.com/mandelsoft/zykov/pkg/command"
	"github.com/mandelsoft/zykov/pkg/expression"
	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/render"
	"github.com/mandelsoft/zykov/pkg/store"
	"github.com/mandelsoft/zykov/pkg/store/filesystem"
)

type Names struct {
	count int
}

func (n *Names) Generate() string {
	n.count++
	return fmt.Sprintf("expr-%d", n.count)
}

type Viewer struct {
	names  []string
	graphs []*graph.Graph
}

func (v *Viewer) Visualize(prev *render.Canvas, name string, g *graph.Graph) (*render.Canvas, error) {
	if prev != nil {
		prev.Close()
	}
	v.names = append(v.names, name)
	v.graphs = append(v.graphs, g)
	return render.NewCanvas(name, g, render.Circular(g)), nil
}

func (v *Viewer) Last() *graph.Graph {
	return v.graphs[len(v.graphs)-1]
}

var _ = Describe("Bridge", func() {
	var db store.Store
	var viewer *Viewer
	var journal *bytes.Buffer
	var bridge *command.Bridge

	clock := func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		db = Must(filesystem.New("/graphs", memoryfs.New()))
		viewer = &Viewer{}
		journal = &bytes.Buffer{}
		bridge = command.New(db, viewer, command.NewJournal(journal, clock), command.Options{Names: &Names{}})
	})

	lines := func() []string {
		return strings.Split(strings.TrimSpace(journal.String()), "\n")
	}

	It("creates and visualizes graphs", func() {
		MustBeSuccessful(bridge.Execute("create_graph g1 a*b+c"))
		expr, ok := Must2(db.Load("g1"))
		Expect(ok).To(BeTrue())
		Expect(expr).To(Equal("a*b+c"))

		MustBeSuccessful(bridge.Execute("visualize_graph g1"))
		g := viewer.Last()
		Expect(g.Vertices()).To(Equal([]string{"a", "b", "c"}))
		Expect(g.Edges()).To(Equal([]graph.Edge{{"a", "b"}}))
		Expect(viewer.names).To(Equal([]string{"g1"}))

		Expect("\n" + journal.String()).To(Equal(`
[2024-03-01 12:30:00] > create_graph g1 a*b+c
[2024-03-01 12:30:00] Graph 'g1' created with expression 'a*b+c'.
[2024-03-01 12:30:00] > visualize_graph g1
[2024-03-01 12:30:00] Visualized graph 'g1'.
`))
	})

	It("stores expressions unevaluated", func() {
		MustBeSuccessful(bridge.Execute("create_graph bad (a + b"))
		expr, _ := Must2(db.Load("bad"))
		Expect(expr).To(Equal("(a + b"))

		err := bridge.Execute("visualize_graph bad")
		Expect(err).To(MatchError(expression.ErrMalformedExpression))
		Expect(viewer.graphs).To(BeEmpty())
	})

	It("induces sub graphs", func() {
		MustBeSuccessful(bridge.Execute("create_graph g a*b*c"))
		MustBeSuccessful(bridge.Execute("visualize_graph g [a, c]"))
		Expect(viewer.Last().String()).To(Equal("{a, c | a-c}"))
	})

	It("rejects invalid induce names", func() {
		MustBeSuccessful(bridge.Execute("create_graph g a*b"))
		Expect(bridge.Execute("visualize_graph g [a b, a]")).To(MatchError(command.ErrInvalidCommandShape))
		Expect(bridge.VisualizeGraph("g", "a", "")).To(MatchError(graph.ErrInvalidVertex))
		Expect(bridge.VisualizeExpression("a*b", "a b")).To(MatchError(graph.ErrInvalidVertex))
		Expect(viewer.graphs).To(BeEmpty())
		Expect(bridge.Canvas()).To(BeNil())
	})

	It("visualizes expressions", func() {
		MustBeSuccessful(bridge.Execute("visualize_expression (a + b) * c"))
		MustBeSuccessful(bridge.Execute("visualize_expression a*b*c [a,c,x]"))
		Expect(viewer.names).To(Equal([]string{"expr-1", "expr-2"}))
		Expect(viewer.graphs[0].String()).To(Equal("{a, b, c | a-c, b-c}"))
		Expect(viewer.Last().String()).To(Equal("{a, c, x | a-c}"))
		Expect(lines()[1]).To(Equal("[2024-03-01 12:30:00] Visualized expression '(a + b) * c'."))
	})

	It("passes the canvas handle", func() {
		MustBeSuccessful(bridge.Execute("visualize_expression a"))
		first := bridge.Canvas()
		MustBeSuccessful(bridge.Execute("visualize_expression b"))
		Expect(first.IsClosed()).To(BeTrue())
		Expect(bridge.Canvas().Graph().Vertices()).To(Equal([]string{"b"}))
	})

	It("keeps the canvas of a partially failed visualization", func() {
		failing := render.NewWriter(&bytes.Buffer{}, func(w io.Writer, c *render.Canvas) error {
			if c.Name() == "expr-2" {
				return fmt.Errorf("display gone")
			}
			return nil
		})
		bridge = command.New(db, render.Tee(viewer, failing), nil, command.Options{Names: &Names{}})

		MustBeSuccessful(bridge.VisualizeExpression("a"))
		first := bridge.Canvas()
		Expect(bridge.VisualizeExpression("b")).To(MatchError(ContainSubstring("display gone")))
		Expect(first.IsClosed()).To(BeTrue())
		Expect(bridge.Canvas().IsClosed()).To(BeFalse())
		Expect(bridge.Canvas().Name()).To(Equal("expr-2"))
	})

	It("reports missing graphs", func() {
		err := bridge.Execute("visualize_graph g9")
		Expect(err).To(MatchError(store.ErrGraphNotFound))
		Expect(lines()[1]).To(Equal(`[2024-03-01 12:30:00] Error: graph not found: no graph found with name "g9"`))
	})

	It("reports unknown commands", func() {
		Expect(bridge.Execute("draw g1")).To(MatchError(command.ErrUnknownCommand))
		Expect(lines()).To(Equal([]string{"[2024-03-01 12:30:00] Unknown command: draw g1"}))
	})

	It("reports invalid command shapes", func() {
		Expect(bridge.Execute("create_graph g1")).To(MatchError(command.ErrInvalidCommandShape))
		Expect(lines()[0]).To(HavePrefix("[2024-03-01 12:30:00] Error: invalid command format"))
	})

	It("continues after errors", func() {
		Expect(bridge.Execute("visualize_expression (a")).To(HaveOccurred())
		Expect(bridge.Execute("unknown")).To(HaveOccurred())
		Expect(bridge.Execute("visualize_graph nothing")).To(HaveOccurred())
		MustBeSuccessful(bridge.Execute("visualize_expression a*b"))
		Expect(viewer.Last().Size()).To(Equal(1))
	})

	It("ignores trailing tokens in lenient mode", func() {
		MustBeSuccessful(bridge.Execute("visualize_expression a+b)c"))
		Expect(viewer.Last().Vertices()).To(Equal([]string{"a", "b"}))
	})

	It("rejects trailing tokens in strict mode", func() {
		bridge = command.New(db, viewer, nil, command.Options{Mode: expression.Strict, Names: &Names{}})
		Expect(bridge.Execute("visualize_expression a+b)c")).To(MatchError(expression.ErrMalformedExpression))
	})

	It("lists and deletes graphs", func() {
		MustBeSuccessful(bridge.Create("g2", "x"))
		MustBeSuccessful(bridge.Create("g1", "y"))
		Expect(bridge.List()).To(Equal([]string{"g1", "g2"}))
		MustBeSuccessful(bridge.Delete("g1"))
		Expect(bridge.Delete("g1")).To(MatchError(store.ErrGraphNotFound))
		Expect(bridge.List()).To(Equal([]string{"g2"}))
	})
})
