package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/goutils/general"

	"github.com/mandelsoft/zykov/pkg/graph"
)

type Format func(w io.Writer, c *Canvas) error

// Writer is a Visualizer printing the graph and its layout
// in some textual format.
type Writer struct {
	out    io.Writer
	format Format
	layout LayoutFunc
}

var _ Visualizer = (*Writer)(nil)

func NewWriter(out io.Writer, format Format, layout ...LayoutFunc) *Writer {
	return &Writer{
		out:    out,
		format: format,
		layout: general.OptionalDefaulted[LayoutFunc](Circular, layout...),
	}
}

func (w *Writer) Visualize(prev *Canvas, name string, g *graph.Graph) (*Canvas, error) {
	if prev != nil {
		prev.Close()
	}
	c := NewCanvas(name, g, w.layout(g))
	return c, w.format(w.out, c)
}

// Text lists the vertices with their positions followed by the edges.
func Text(w io.Writer, c *Canvas) error {
	g := c.Graph()
	var b strings.Builder

	fmt.Fprintf(&b, "graph %s: %d vertices, %d edges\n", c.Name(), g.Order(), g.Size())
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "  %s %s\n", v, c.Layout()[v])
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -- %s\n", e.A, e.B)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DOT renders the graph in Graphviz format using
// the layout as fixed node positions.
func DOT(w io.Writer, c *Canvas) error {
	g := c.Graph()
	var b strings.Builder

	fmt.Fprintf(&b, "graph %s {\n", dotID(c.Name()))
	b.WriteString("  node [shape=circle, style=filled, fillcolor=darkgrey];\n")
	for _, v := range g.Vertices() {
		p := c.Layout()[v]
		fmt.Fprintf(&b, "  %s [pos=\"%.3f,%.3f!\"];\n", dotID(v), p.X, p.Y)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -- %s;\n", dotID(e.A), dotID(e.B))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotID quotes a DOT identifier. Only quote and backslash are escaped,
// all other runes are taken literally.
func dotID(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// FormatFor returns the format for the given name.
func FormatFor(name string) (Format, error) {
	switch name {
	case "", "text":
		return Text, nil
	case "dot":
		return DOT, nil
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}
