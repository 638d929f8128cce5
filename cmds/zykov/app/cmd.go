package app

import (
	"io"

	"github.com/mandelsoft/goutils/general"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/zykov/pkg/command"
	"github.com/mandelsoft/zykov/pkg/expression"
	"github.com/mandelsoft/zykov/pkg/render"
	"github.com/mandelsoft/zykov/pkg/store/filesystem"
)

const DEFAULT_VIEWER = "ws://localhost:8080/viewer"

type Options struct {
	fs vfs.FileSystem

	config   string
	store    string
	logLevel string
	strict   bool
	journal  bool
	output   string
	layout   string
	viewer   string
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.config, "config", "c", "", "config file")
	flags.StringVarP(&o.store, "store", "d", ".", "graph store directory")
	flags.StringVarP(&o.logLevel, "log-level", "L", "warn", "log level")
	flags.BoolVarP(&o.strict, "strict", "S", false, "reject trailing tokens in expressions")
	flags.BoolVarP(&o.journal, "journal", "j", false, "print command journal to stderr")
	flags.StringVarP(&o.output, "output", "o", "text", "visualization output format (text, dot)")
	flags.StringVarP(&o.layout, "layout", "l", "circular", "vertex layout (circular, force)")
	flags.StringVarP(&o.viewer, "viewer", "V", DEFAULT_VIEWER, "viewer endpoint used by watch")
}

// Complete fills the settings not given by flags from
// the environment and config files.
func (o *Options) Complete(cmd *cobra.Command) error {
	cfg := GetConfig(o.fs)
	if o.config != "" {
		explicit, err := LoadConfig(o.fs, o.config)
		if err != nil {
			return err
		}
		MergeConfig(cfg, explicit)
	}

	changed := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.Root().PersistentFlags().Changed(name)
	}
	set := func(name string, target *string, value *string) {
		if value != nil && !changed(name) {
			*target = *value
		}
	}
	set("store", &o.store, cfg.Store)
	set("log-level", &o.logLevel, cfg.LogLevel)
	set("output", &o.output, cfg.Output)
	set("layout", &o.layout, cfg.Layout)
	set("viewer", &o.viewer, cfg.Viewer)
	if cfg.Strict != nil && !changed("strict") {
		o.strict = *cfg.Strict
	}
	return configureLogging(o.logLevel)
}

func (o *Options) Mode() expression.Mode {
	if o.strict {
		return expression.Strict
	}
	return expression.Lenient
}

func (o *Options) Visualizer(out io.Writer) (*render.Writer, error) {
	format, err := render.FormatFor(o.output)
	if err != nil {
		return nil, err
	}
	layout, err := render.LayoutFor(o.layout)
	if err != nil {
		return nil, err
	}
	return render.NewWriter(out, format, layout), nil
}

// Bridge creates the command bridge for the configured store.
// Without a visualizer the graphs are written to out.
func (o *Options) Bridge(cmd *cobra.Command, journal bool, v ...render.Visualizer) (*command.Bridge, error) {
	db, err := filesystem.New(o.store, o.fs)
	if err != nil {
		return nil, err
	}
	viewer := general.Optional(v...)
	if viewer == nil {
		viewer, err = o.Visualizer(cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
	}
	var j *command.Journal
	if journal || o.journal {
		j = command.NewJournal(cmd.ErrOrStderr())
	}
	log.Debug("using store {{store}}", "store", o.store)
	return command.New(db, viewer, j, command.Options{Mode: o.Mode()}), nil
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: general.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "zykov <options> <cmd> <args>",
		Short: "create and visualize graph expressions",
		Long: `
This command manages named graph definitions. A graph is described by
an expression over vertex names and the operators + (union) and
* (join, connecting all vertices of both operands). * binds tighter
than +, parentheses may be used to group sub expressions.

  create g1 "a*b + c"
  visualize g1 --induce a,c
  exec "visualize_expression (a + b) * c [a, c]"
`,
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete(cmd)
		},
	}

	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewCreate(opts))
	maincmd.AddCommand(NewVisualize(opts))
	maincmd.AddCommand(NewExec(opts))
	maincmd.AddCommand(NewShell(opts))
	maincmd.AddCommand(NewServe(opts))
	maincmd.AddCommand(NewWatch(opts))
	maincmd.AddCommand(NewGet(opts))
	maincmd.AddCommand(NewList(opts))
	maincmd.AddCommand(NewDelete(opts))
	return maincmd
}
