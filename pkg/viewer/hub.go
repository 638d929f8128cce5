package viewer

import (
	"slices"
	"strings"
	"sync"

	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/goutils/maputils"

	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/render"
)

type registration struct {
	req     Request
	handler EventHandler
}

// Hub is a Visualizer distributing visualized graphs to
// registered viewers. It keeps the last canvas for every name,
// which is replayed to newly registered handlers.
type Hub struct {
	lock     sync.Mutex
	layout   render.LayoutFunc
	canvases map[string]*render.Canvas
	handlers []*registration
}

var _ render.Visualizer = (*Hub)(nil)

func NewHub(layout ...render.LayoutFunc) *Hub {
	return &Hub{
		layout:   general.OptionalDefaulted[render.LayoutFunc](render.Circular, layout...),
		canvases: map[string]*render.Canvas{},
	}
}

func (h *Hub) Visualize(prev *render.Canvas, name string, g *graph.Graph) (*render.Canvas, error) {
	c := render.NewCanvas(name, g, h.layout(g))

	h.lock.Lock()
	old := h.canvases[name]
	h.canvases[name] = c
	list := h.matching(name)
	h.lock.Unlock()

	// canvases of other graphs stay visible for the viewers
	if old != nil {
		old.Close()
	}
	if prev != nil && prev != old && prev.Name() == name {
		prev.Close()
	}

	evt := NewEvent(c)
	log.Debug("publishing {{name}} to {{amount}} viewers", "name", name, "amount", len(list))
	for _, r := range list {
		r.handler.HandleEvent(evt)
	}
	return c, nil
}

// Canvases returns the current canvases ordered by name.
func (h *Hub) Canvases() []*render.Canvas {
	h.lock.Lock()
	defer h.lock.Unlock()
	return maputils.Values(h.canvases, strings.Compare)
}

// RegisterWatchHandler registers a handler for the graphs matching
// the request. The returned function removes the registration.
func (h *Hub) RegisterWatchHandler(req Request, handler EventHandler) func() {
	reg := &registration{req: req, handler: handler}

	h.lock.Lock()
	h.handlers = append(h.handlers, reg)
	var replay []*render.Canvas
	for _, n := range maputils.OrderedKeys(h.canvases) {
		if req.Matches(n) {
			replay = append(replay, h.canvases[n])
		}
	}
	h.lock.Unlock()

	log.Info("registered viewer for {{request}}", "request", req)
	for _, c := range replay {
		handler.HandleEvent(NewEvent(c))
	}
	return func() { h.unregister(reg) }
}

func (h *Hub) unregister(reg *registration) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.handlers = slices.DeleteFunc(h.handlers, func(r *registration) bool {
		return r == reg
	})
	log.Info("unregistered viewer for {{request}}", "request", reg.req)
}

func (h *Hub) matching(name string) []*registration {
	var list []*registration
	for _, r := range h.handlers {
		if r.req.Matches(name) {
			list = append(list, r)
		}
	}
	return list
}
