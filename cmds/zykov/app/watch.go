package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/zykov/pkg/viewer"
)

type Watch struct {
	cmd *cobra.Command

	mainopts *Options
	format   string
}

func NewWatch(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [<name>]",
		Short: "watch graphs visualized by a serving shell",
	}

	c := &Watch{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.format, "format", "f", "text", "event format (text, yaml, json)")
	return cmd
}

func (c *Watch) Run(args []string) error {
	var req viewer.Request
	switch len(args) {
	case 0:
	case 1:
		req.Name = args[0]
	default:
		return fmt.Errorf("at most one graph name expected")
	}
	printer, err := EventPrinter(c.cmd.OutOrStdout(), c.format)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("watching {{url}}", "url", c.mainopts.viewer)
	return viewer.NewClient(c.mainopts.viewer).Watch(ctx, req, viewer.EventHandlerFunc(func(e viewer.Event) {
		if err := printer(e); err != nil {
			log.LogError(err, "cannot print event for {{name}}", "name", e.Name)
		}
	}))
}

// EventPrinter returns a function printing viewer events
// in the given format.
func EventPrinter(w io.Writer, format string) (func(e viewer.Event) error, error) {
	switch format {
	case "", "text":
		return func(e viewer.Event) error {
			_, err := fmt.Fprintf(w, "%s [%.12s]: %s\n", e.Name, e.Fingerprint, e.Graph)
			return err
		}, nil
	case "yaml":
		return func(e viewer.Event) error {
			data, err := yaml.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "---\n%s", data)
			return err
		}, nil
	case "json":
		return func(e viewer.Event) error {
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\n", data)
			return err
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
