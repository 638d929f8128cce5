package command

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/goutils/sliceutils"

	"github.com/mandelsoft/zykov/pkg/graph"
)

type Kind string

const (
	CREATE_GRAPH         Kind = "create_graph"
	VISUALIZE_GRAPH      Kind = "visualize_graph"
	VISUALIZE_EXPRESSION Kind = "visualize_expression"
)

type Command struct {
	Kind       Kind
	Name       string
	Expression string
	Induce     []string
}

func (c *Command) String() string {
	var s string
	switch c.Kind {
	case CREATE_GRAPH:
		s = fmt.Sprintf("%s %s %s", c.Kind, c.Name, c.Expression)
	case VISUALIZE_GRAPH:
		s = fmt.Sprintf("%s %s", c.Kind, c.Name)
	default:
		s = fmt.Sprintf("%s %s", c.Kind, c.Expression)
	}
	if len(c.Induce) > 0 {
		s = fmt.Sprintf("%s [%s]", s, strings.Join(c.Induce, ", "))
	}
	return s
}

// Parse parses a command text.
func Parse(text string) (*Command, error) {
	text, induce, bracket := extractVertexList(text)

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, text)
	}

	kind := Kind(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(text, fields[0]))
	cmd := &Command{Kind: kind}

	switch kind {
	case CREATE_GRAPH:
		if bracket {
			return nil, invalidShape(kind, "no vertex list possible")
		}
		if len(fields) < 3 {
			return nil, invalidShape(kind, "graph name and expression required")
		}
		cmd.Name = fields[1]
		cmd.Expression = strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
	case VISUALIZE_GRAPH:
		if len(fields) != 2 {
			return nil, invalidShape(kind, "exactly one graph name required")
		}
		cmd.Name = fields[1]
	case VISUALIZE_EXPRESSION:
		if rest == "" {
			return nil, invalidShape(kind, "expression required")
		}
		cmd.Expression = rest
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, text)
	}

	if bracket {
		if len(induce) == 0 {
			return nil, invalidShape(kind, "empty vertex list")
		}
		for _, n := range induce {
			if err := graph.CheckName(n); err != nil {
				return nil, invalidShape(kind, "%s", err)
			}
		}
		cmd.Induce = induce
	}
	return cmd, nil
}

// extractVertexList splits a trailing bracketed vertex list from
// the command text. The names are taken from the first '[' up to
// the next ']', the command is the text before the '['.
func extractVertexList(text string) (string, []string, bool) {
	start := strings.Index(text, "[")
	if start < 0 {
		return strings.TrimSpace(text), nil, false
	}
	end := strings.Index(text[start:], "]")
	if end < 0 {
		return strings.TrimSpace(text), nil, false
	}
	list := text[start+1 : start+end]
	names := sliceutils.Filter(sliceutils.Transform(strings.Split(list, ","), strings.TrimSpace), func(s string) bool {
		return s != ""
	})
	return strings.TrimSpace(text[:start]), names, true
}
