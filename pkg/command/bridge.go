package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/goombaio/namegenerator"
	"github.com/mandelsoft/goutils/general"

	"github.com/mandelsoft/zykov/pkg/expression"
	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/render"
	"github.com/mandelsoft/zykov/pkg/store"
)

type Options struct {
	// Mode is the parse mode used for expressions.
	Mode expression.Mode
	// Names generates canvas names for inline expressions.
	Names namegenerator.Generator
}

// Bridge executes commands against a graph store and a visualizer.
// Commands are executed one after the other, a Bridge is not
// intended for concurrent use.
type Bridge struct {
	store   store.Store
	viewer  render.Visualizer
	journal *Journal
	mode    expression.Mode
	names   namegenerator.Generator
	canvas  *render.Canvas
}

func New(s store.Store, v render.Visualizer, j *Journal, opts ...Options) *Bridge {
	o := general.Optional(opts...)
	if o.Names == nil {
		o.Names = namegenerator.NewNameGenerator(time.Now().UTC().UnixNano())
	}
	return &Bridge{
		store:   s,
		viewer:  v,
		journal: j,
		mode:    o.Mode,
		names:   o.Names,
	}
}

// Canvas returns the handle of the last visualization.
func (b *Bridge) Canvas() *render.Canvas {
	return b.canvas
}

// Execute parses and executes a command text. All errors are
// reported to the journal and returned for notification.
func (b *Bridge) Execute(text string) error {
	cmd, err := Parse(text)
	if err != nil {
		if errors.Is(err, ErrUnknownCommand) {
			b.journal.Printf("Unknown command: %s", text)
		} else {
			b.journal.Error(err)
		}
		log.Debug("rejected command {{command}}: {{error}}", "command", text, "error", err)
		return err
	}
	return b.Run(cmd)
}

// Run executes a parsed command.
func (b *Bridge) Run(cmd *Command) error {
	b.journal.Printf("> %s", cmd)
	log.Debug("executing {{command}}", "command", cmd)

	var err error
	switch cmd.Kind {
	case CREATE_GRAPH:
		err = b.Create(cmd.Name, cmd.Expression)
	case VISUALIZE_GRAPH:
		err = b.VisualizeGraph(cmd.Name, cmd.Induce...)
	case VISUALIZE_EXPRESSION:
		err = b.VisualizeExpression(cmd.Expression, cmd.Induce...)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	if err != nil {
		b.journal.Error(err)
	}
	return err
}

// Create stores the unevaluated expression under the given name.
func (b *Bridge) Create(name, expr string) error {
	err := b.store.Store(name, expr)
	if err != nil {
		return err
	}
	b.journal.Printf("Graph '%s' created with expression '%s'.", name, expr)
	return nil
}

// Evaluate loads and evaluates a stored graph definition.
func (b *Bridge) Evaluate(name string) (*graph.Graph, error) {
	expr, ok, err := b.store.Load(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.NotFound(name)
	}
	g, err := expression.Parse(expr, b.mode)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", name, err)
	}
	return g, nil
}

func (b *Bridge) VisualizeGraph(name string, induce ...string) error {
	g, err := b.Evaluate(name)
	if err != nil {
		return err
	}
	err = b.visualize(name, g, induce)
	if err != nil {
		return err
	}
	b.journal.Printf("Visualized graph '%s'.", name)
	return nil
}

func (b *Bridge) VisualizeExpression(expr string, induce ...string) error {
	g, err := expression.Parse(expr, b.mode)
	if err != nil {
		return err
	}
	err = b.visualize(b.names.Generate(), g, induce)
	if err != nil {
		return err
	}
	b.journal.Printf("Visualized expression '%s'.", expr)
	return nil
}

func (b *Bridge) visualize(name string, g *graph.Graph, induce []string) error {
	if len(induce) > 0 {
		for _, n := range induce {
			if err := graph.CheckName(n); err != nil {
				return err
			}
		}
		g = g.Induce(induce...)
	}
	c, err := b.viewer.Visualize(b.canvas, name, g)
	if c != nil {
		b.canvas = c
	}
	if err != nil {
		return fmt.Errorf("visualizing %q: %w", name, err)
	}
	return nil
}

// List returns the names of the stored graphs.
func (b *Bridge) List() ([]string, error) {
	return b.store.List()
}

// Delete removes a stored graph definition.
func (b *Bridge) Delete(name string) error {
	ok, err := b.store.Delete(name)
	if err != nil {
		return err
	}
	if !ok {
		return store.NotFound(name)
	}
	b.journal.Printf("Graph '%s' deleted.", name)
	return nil
}
