package render_test

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	. "github.com/mandelsoft/goutils/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/zykov/pkg/expression"
	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/render"
)

var _ = Describe("Rendering", func() {
	Context("layouts", func() {
		It("places vertices on a circle", func() {
			l := render.Circular(Must(expression.Parse("a*b+c+d")))
			Expect(l).To(HaveLen(4))
			Expect(l["a"].X).To(BeNumerically("~", 1, 1e-9))
			Expect(l["a"].Y).To(BeNumerically("~", 0, 1e-9))
			Expect(l["b"].X).To(BeNumerically("~", 0, 1e-9))
			Expect(l["b"].Y).To(BeNumerically("~", 1, 1e-9))
			Expect(l["c"].X).To(BeNumerically("~", -1, 1e-9))
		})

		It("handles empty graphs", func() {
			Expect(render.Circular(graph.Empty())).To(BeEmpty())
			Expect(render.ForceDirected(graph.Empty())).To(BeEmpty())
		})

		It("computes stable force directed layouts", func() {
			g := Must(expression.Parse("(a+b+c)*(d+e)"))
			l := render.ForceDirected(g)
			Expect(l).To(HaveLen(5))
			for _, p := range l {
				Expect(math.Abs(p.X)).To(BeNumerically("<=", 1+1e-9))
				Expect(math.Abs(p.Y)).To(BeNumerically("<=", 1+1e-9))
			}
			Expect(render.ForceDirected(g)).To(Equal(l))
		})

		It("selects layouts", func() {
			Expect(render.LayoutFor("force")).NotTo(BeNil())
			_, err := render.LayoutFor("spiral")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("writer", func() {
		var buf *bytes.Buffer

		BeforeEach(func() {
			buf = &bytes.Buffer{}
		})

		It("writes text", func() {
			w := render.NewWriter(buf, render.Text)
			c := Must(w.Visualize(nil, "g1", Must(expression.Parse("a*b+c"))))
			Expect(c.Name()).To(Equal("g1"))
			Expect(c.ID()).NotTo(BeEmpty())
			Expect("\n" + buf.String()).To(Equal(`
graph g1: 3 vertices, 1 edges
  a (1.000, 0.000)
  b (-0.500, 0.866)
  c (-0.500, -0.866)
  a -- b
`))
		})

		It("writes dot", func() {
			w := render.NewWriter(buf, render.DOT)
			Must(w.Visualize(nil, "g", Must(expression.Parse("a*b"))))
			Expect(strings.Split(buf.String(), "\n")).To(ContainElements(
				`graph "g" {`,
				`  "a" [pos="1.000,0.000!"];`,
				`  "a" -- "b";`,
			))
		})

		It("escapes dot identifiers", func() {
			w := render.NewWriter(buf, render.DOT)
			Must(w.Visualize(nil, `g"1`, Must(expression.Parse(`x"y * ä\b`))))
			Expect(strings.Split(buf.String(), "\n")).To(ContainElements(
				`graph "g\"1" {`,
				`  "x\"y" -- "ä\\b";`,
			))

			buf.Reset()
			Must(w.Visualize(nil, "g2", Must(graph.New([]string{"z\xff"}))))
			Expect(buf.String()).To(ContainSubstring("  \"z\xff\" [pos="))
			Expect(buf.String()).NotTo(ContainSubstring(`\x`))
		})

		It("replaces the former canvas", func() {
			w := render.NewWriter(buf, render.Text)
			c1 := Must(w.Visualize(nil, "g1", Must(expression.Parse("a"))))
			c2 := Must(w.Visualize(c1, "g2", Must(expression.Parse("b"))))
			Expect(c1.IsClosed()).To(BeTrue())
			Expect(c2.IsClosed()).To(BeFalse())
			Expect(c2.ID()).NotTo(Equal(c1.ID()))
		})
	})

	Context("tee", func() {
		It("forwards to all visualizers", func() {
			b1 := &bytes.Buffer{}
			b2 := &bytes.Buffer{}
			t := render.Tee(render.NewWriter(b1, render.Text), render.NewWriter(b2, render.DOT))
			c := Must(t.Visualize(nil, "g", Must(expression.Parse("a+b"))))
			Expect(c.Graph().Order()).To(Equal(2))
			Expect(b1.String()).To(HavePrefix("graph g:"))
			Expect(b2.String()).To(HavePrefix(`graph "g" {`))
		})

		It("keeps the first canvas if a later visualizer fails", func() {
			buf := &bytes.Buffer{}
			failing := render.NewWriter(buf, func(w io.Writer, c *render.Canvas) error {
				if c.Name() == "g2" {
					return fmt.Errorf("cannot draw %s", c.Name())
				}
				return nil
			})
			t := render.Tee(render.NewWriter(&bytes.Buffer{}, render.Text), failing)
			prev := Must(t.Visualize(nil, "g1", Must(expression.Parse("a"))))

			c, err := t.Visualize(prev, "g2", Must(expression.Parse("b")))
			Expect(err).To(MatchError("cannot draw g2"))
			Expect(c).NotTo(BeNil())
			Expect(c.Name()).To(Equal("g2"))
			Expect(c.IsClosed()).To(BeFalse())
			Expect(prev.IsClosed()).To(BeTrue())
		})

		It("ignores nil visualizers", func() {
			var none *render.Writer
			buf := &bytes.Buffer{}
			t := render.Tee(none, render.NewWriter(buf, render.Text), nil)
			c := Must(t.Visualize(nil, "g", Must(expression.Parse("a"))))
			Expect(c.Name()).To(Equal("g"))
			Expect(buf.String()).To(HavePrefix("graph g: 1 vertices"))
		})
	})
})
