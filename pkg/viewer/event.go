package viewer

import (
	"encoding/json"

	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/render"
)

// Request is the registration request sent by a viewer.
// An empty name subscribes to all graphs.
type Request struct {
	Name string `json:"name,omitempty"`
}

func (r Request) Matches(name string) bool {
	return r.Name == "" || r.Name == name
}

// Event describes a visualized graph.
type Event struct {
	Canvas      string        `json:"canvas"`
	Name        string        `json:"name"`
	Graph       *graph.Graph  `json:"graph"`
	Layout      render.Layout `json:"layout,omitempty"`
	Fingerprint string        `json:"fingerprint"`
}

func NewEvent(c *render.Canvas) Event {
	return Event{
		Canvas:      c.ID(),
		Name:        c.Name(),
		Graph:       c.Graph(),
		Layout:      c.Layout(),
		Fingerprint: c.Graph().Fingerprint(),
	}
}

type Error struct {
	Error string `json:"error"`
}

func (e *Error) Data() []byte {
	data, _ := json.Marshal(e)
	return data
}

type EventHandler interface {
	HandleEvent(e Event)
}

type EventHandlerFunc func(e Event)

func (f EventHandlerFunc) HandleEvent(e Event) {
	f(e)
}
