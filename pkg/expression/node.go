package expression

import (
	"fmt"

	"github.com/mandelsoft/goutils/sliceutils"

	"github.com/mandelsoft/zykov/pkg/graph"
)

type Operator string

const (
	OP_UNION Operator = "+"
	OP_JOIN  Operator = "*"
)

// Node is a node of an expression tree. A leaf node describes
// a single vertex, an operator node combines its two operands.
type Node struct {
	Name     string
	Operator Operator
	Operands []*Node
}

func NewVertexNode(n string) *Node {
	return &Node{
		Name: n,
	}
}

func NewOperatorNode(op Operator, a, b *Node) *Node {
	return &Node{
		Operator: op,
		Operands: []*Node{a, b},
	}
}

func (n *Node) IsVertex() bool {
	return n.Operator == ""
}

func (n *Node) String() string {
	if n.IsVertex() {
		return n.Name
	}
	return fmt.Sprintf("(%s%s%s)", n.Operands[0], n.Operator, n.Operands[1])
}

// Vertices returns the vertex names used in the expression
// in order of their first occurrence.
func (n *Node) Vertices() []string {
	if n.IsVertex() {
		return []string{n.Name}
	}
	var result []string
	for _, o := range n.Operands {
		result = sliceutils.AppendUnique(result, o.Vertices()...)
	}
	return result
}

// Eval calculates the graph described by the expression tree.
// Operands are evaluated left to right.
func (n *Node) Eval() (*graph.Graph, error) {
	if n.IsVertex() {
		return graph.Vertex(n.Name)
	}
	a, err := n.Operands[0].Eval()
	if err != nil {
		return nil, err
	}
	b, err := n.Operands[1].Eval()
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case OP_UNION:
		return graph.Union(a, b), nil
	case OP_JOIN:
		return graph.Join(a, b), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", n.Operator)
	}
}
