package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>...",
		Short: "Print the category each file name would be sorted into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := cfg.CategoryTable()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				fmt.Fprintf(out, "%s\t%s\n", name, table.Classify(name))
			}
			return nil
		},
	}
}
