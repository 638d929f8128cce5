package app

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/goutils/sliceutils"
	"github.com/spf13/cobra"
)

type Visualize struct {
	cmd *cobra.Command

	mainopts   *Options
	expression bool
	induce     []string
}

func NewVisualize(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize {<name> | --expression <expression>}",
		Short: "visualize a named graph or an expression",
	}

	c := &Visualize{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.expression, "expression", "e", false, "arguments form an expression instead of a graph name")
	flags.StringSliceVarP(&c.induce, "induce", "i", nil, "restrict to sub graph induced by given vertices")
	return cmd
}

func (c *Visualize) Run(args []string) error {
	b, err := c.mainopts.Bridge(c.cmd, false)
	if err != nil {
		return err
	}
	induce := sliceutils.Transform(c.induce, strings.TrimSpace)

	if c.expression {
		if len(args) == 0 {
			return fmt.Errorf("expression required")
		}
		return b.VisualizeExpression(strings.Join(args, " "), induce...)
	}
	if len(args) != 1 {
		return fmt.Errorf("exactly one graph name required")
	}
	return b.VisualizeGraph(args[0], induce...)
}
