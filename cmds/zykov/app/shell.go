package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/zykov/pkg/command"
)

type Shell struct {
	cmd *cobra.Command

	mainopts *Options
	prompt   string
}

func NewShell(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "read and execute graph commands from stdin",
		Long: `
Reads commands line by line and executes them. Empty lines and lines
starting with # are ignored. A failing command is reported, the shell
continues with the next one. The command journal is written to stderr.
`,
	}

	c := &Shell{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.prompt, "prompt", "p", "", "prompt printed before reading a command")
	return cmd
}

func (c *Shell) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	b, err := c.mainopts.Bridge(c.cmd, true)
	if err != nil {
		return err
	}
	return RunShell(b, c.cmd.InOrStdin(), c.cmd.OutOrStdout(), c.prompt)
}

// RunShell executes the commands read from in until EOF. It returns
// the number of failed commands as error.
func RunShell(b *command.Bridge, in io.Reader, out io.Writer, prompt string) error {
	failed := 0
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if b.Execute(line) != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d command(s) failed", failed)
	}
	return nil
}
