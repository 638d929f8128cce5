package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type Exec struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewExec(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command text>",
		Short: "execute a textual graph command",
		Long: `
Executes one of the commands

  create_graph <name> <expression>
  visualize_graph <name> [<vertex>, ...]
  visualize_expression <expression> [<vertex>, ...]

The arguments are joined to the command text.
`,
	}

	c := &Exec{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Exec) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("command text required")
	}
	b, err := c.mainopts.Bridge(c.cmd, true)
	if err != nil {
		return err
	}
	return b.Execute(strings.Join(args, " "))
}
