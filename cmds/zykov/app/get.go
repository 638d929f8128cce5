package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mandelsoft/goutils/sliceutils"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/zykov/pkg/expression"
	"github.com/mandelsoft/zykov/pkg/graph"
	"github.com/mandelsoft/zykov/pkg/store"
	"github.com/mandelsoft/zykov/pkg/store/filesystem"
)

// Definition describes a stored graph and its evaluation.
type Definition struct {
	Name       string       `json:"name"`
	Expression string       `json:"expression"`
	Graph      *graph.Graph `json:"graph,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type List struct {
	Items []*Definition `json:"items"`
}

type Get struct {
	cmd *cobra.Command

	mainopts *Options
	format   string
}

func NewGet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get {<name>}",
		Short: "show stored graph definitions and their evaluation",
	}

	c := &Get{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.format, "format", "f", "", "output format (yaml, json)")
	return cmd
}

func (c *Get) Run(args []string) error {
	db, err := filesystem.New(c.mainopts.store, c.mainopts.fs)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args, err = db.List()
		if err != nil {
			return err
		}
	}

	list := &List{Items: []*Definition{}}
	for _, n := range args {
		d, err := c.definition(db, n)
		if err != nil {
			return err
		}
		list.Items = append(list.Items, d)
	}

	w := c.cmd.OutOrStdout()
	switch c.format {
	case "":
		return printTable(w, list.Items)
	case "yaml":
		var data []byte
		if len(list.Items) == 1 {
			data, err = yaml.Marshal(list.Items[0])
		} else {
			data, err = yaml.Marshal(list)
		}
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	return fmt.Errorf("unknown format %q", c.format)
}

func (c *Get) definition(db store.Store, name string) (*Definition, error) {
	expr, ok, err := db.Load(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, store.NotFound(name)
	}
	d := &Definition{
		Name:       name,
		Expression: strings.TrimSpace(expr),
	}
	d.Graph, err = expression.Parse(expr, c.mainopts.Mode())
	if err != nil {
		d.Error = err.Error()
	}
	return d, nil
}

func printTable(w io.Writer, list []*Definition) error {
	columns := []string{"NAME", "VERTICES", "EDGES", "EXPRESSION"}
	var fields [][]string
	for _, d := range list {
		if d.Error != "" {
			fields = append(fields, []string{d.Name, "-", "-", d.Expression + " (" + d.Error + ")"})
			continue
		}
		fields = append(fields, []string{d.Name, strconv.Itoa(d.Graph.Order()), strconv.Itoa(d.Graph.Size()), d.Expression})
	}

	max := make([]int, len(columns))
	for i, s := range columns {
		max[i] = len(s)
	}
	for _, cols := range fields {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columns, f)
	for _, cols := range fields {
		printLine(w, cols, f)
	}
	return nil
}

func printLine(w io.Writer, cols []string, msg string) {
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, sliceutils.Convert[any](cols)...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}
