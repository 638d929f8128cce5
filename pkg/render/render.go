package render

import (
	"sync"

	"github.com/google/uuid"
	"github.com/modern-go/reflect2"

	"github.com/mandelsoft/zykov/pkg/graph"
)

type Visualizer interface {
	// Visualize displays g under the given name. prev is the canvas
	// returned by the former call (or nil) and is replaced by the
	// returned one. A canvas returned together with an error still
	// replaces prev.
	Visualize(prev *Canvas, name string, g *graph.Graph) (*Canvas, error)
}

// Canvas is the handle of a visualized graph.
type Canvas struct {
	lock   sync.Mutex
	id     string
	name   string
	graph  *graph.Graph
	layout Layout
	closed bool
}

func NewCanvas(name string, g *graph.Graph, layout Layout) *Canvas {
	return &Canvas{
		id:     uuid.NewString(),
		name:   name,
		graph:  g,
		layout: layout,
	}
}

func (c *Canvas) ID() string {
	return c.id
}

func (c *Canvas) Name() string {
	return c.name
}

func (c *Canvas) Graph() *graph.Graph {
	return c.graph
}

func (c *Canvas) Layout() Layout {
	return c.layout
}

func (c *Canvas) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
	return nil
}

func (c *Canvas) IsClosed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.closed
}

////////////////////////////////////////////////////////////////////////////////

type tee []Visualizer

// Tee returns a visualizer forwarding to all given visualizers.
// Only the first one gets the former canvas, and its canvas is
// returned, also if a later one fails. Nil entries are ignored.
func Tee(v ...Visualizer) Visualizer {
	var t tee
	for _, e := range v {
		if !reflect2.IsNil(e) {
			t = append(t, e)
		}
	}
	return t
}

func (t tee) Visualize(prev *Canvas, name string, g *graph.Graph) (*Canvas, error) {
	var result *Canvas
	for i, v := range t {
		if i > 0 {
			// only the first canvas is handed out
			c, err := v.Visualize(nil, name, g)
			if c != nil {
				c.Close()
			}
			if err != nil {
				return result, err
			}
			continue
		}
		c, err := v.Visualize(prev, name, g)
		result = c
		if err != nil {
			return result, err
		}
	}
	if result == nil {
		if prev != nil {
			prev.Close()
		}
		result = NewCanvas(name, g, Circular(g))
	}
	return result, nil
}
