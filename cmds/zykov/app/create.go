package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/zykov/pkg/expression"
)

type Create struct {
	cmd *cobra.Command

	mainopts *Options
	check    bool
}

func NewCreate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> <expression>",
		Short: "create a named graph definition",
		Long: `
The expression is stored as given, it is evaluated only when the graph
is visualized. Use --check to validate it before storing.
`,
	}

	c := &Create{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVarP(&c.check, "check", "", false, "validate expression before storing")
	return cmd
}

func (c *Create) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("graph name and expression required")
	}
	b, err := c.mainopts.Bridge(c.cmd, false)
	if err != nil {
		return err
	}
	expr := strings.Join(args[1:], " ")
	if c.check {
		_, err = expression.Parse(expr, c.mainopts.Mode())
		if err != nil {
			return err
		}
	}
	err = b.Create(args[0], expr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "graph %s: created\n", args[0])
	return nil
}
