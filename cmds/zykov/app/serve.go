package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mandelsoft/goutils/generics"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/zykov/pkg/render"
	"github.com/mandelsoft/zykov/pkg/server"
	"github.com/mandelsoft/zykov/pkg/viewer"
)

type Serve struct {
	cmd *cobra.Command

	mainopts *Options
	port     int
	echo     bool
	keep     bool
}

func NewServe(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run a command shell publishing graphs to remote viewers",
		Long: `
Starts a viewer endpoint (websocket, path /viewer) and reads commands
from stdin like the shell command. The state of the shell and the
viewer connections is reported at /healthz. Every visualized graph is sent to
the connected viewers (see the watch command).
`,
	}

	c := &Serve{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.IntVarP(&c.port, "port", "p", 8080, "server port")
	flags.BoolVarP(&c.echo, "echo", "e", false, "additionally write visualized graphs to stdout")
	flags.BoolVarP(&c.keep, "keep", "k", false, "keep serving after end of input until interrupted")
	return cmd
}

func (c *Serve) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	layout, err := render.LayoutFor(c.mainopts.layout)
	if err != nil {
		return err
	}

	hub := viewer.NewHub(layout)
	handler := viewer.NewHandler(hub)
	defer handler.Close()

	var echo *render.Writer
	if c.echo {
		echo, err = c.mainopts.Visualizer(c.cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}
	b, err := c.mainopts.Bridge(c.cmd, true, render.Tee(hub, echo))
	if err != nil {
		return err
	}

	var shellState atomic.Pointer[string]
	shellState.Store(generics.Pointer("running"))
	health := server.NewHealth()
	health.Register("viewer", func() (bool, string) {
		return true, fmt.Sprintf("%d connection(s), %d graph(s)", handler.Connections(), len(hub.Canvases()))
	})
	health.Register("shell", func() (bool, string) {
		s := *shellState.Load()
		return !strings.HasPrefix(s, "failed"), s
	})

	srv := server.NewServer(c.port)
	srv.Handle("/viewer", handler)
	srv.Handle("/healthz", health)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.ListenAndServeContext(ctx, 5*time.Second)
	}()

	shellDone := make(chan error, 1)
	go func() {
		err := RunShell(b, c.cmd.InOrStdin(), c.cmd.OutOrStdout(), "")
		if err != nil {
			shellState.Store(generics.Pointer("failed: " + err.Error()))
		} else {
			shellState.Store(generics.Pointer("finished"))
		}
		shellDone <- err
	}()

	var result error
	select {
	case result = <-shellDone:
		if c.keep {
			log.Info("end of input, serving until interrupted")
			<-ctx.Done()
		}
	case <-ctx.Done():
	case err := <-serverDone:
		return err
	}
	cancel()
	handler.Close()
	if err := <-serverDone; err != nil {
		return err
	}
	return result
}
