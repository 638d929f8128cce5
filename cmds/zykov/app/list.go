package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewList(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the names of the stored graphs",
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("no arguments expected")
		}
		b, err := opts.Bridge(cmd, false)
		if err != nil {
			return err
		}
		names, err := b.List()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	}
	return cmd
}

func NewDelete(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name> {<name>}",
		Short: "delete stored graphs",
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("graph name required")
		}
		b, err := opts.Bridge(cmd, false)
		if err != nil {
			return err
		}
		for _, n := range args {
			err = b.Delete(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "graph %s: deleted\n", n)
		}
		return nil
	}
	return cmd
}
