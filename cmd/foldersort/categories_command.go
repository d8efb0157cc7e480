package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the effective category table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := cfg.CategoryTable()
			if err != nil {
				return err
			}

			categories := table.Categories()
			rows := make([][]string, 0, len(categories)+1)
			for _, cat := range categories {
				rows = append(rows, []string{cat.Name, strings.Join(cat.Extensions, " ")})
			}
			rows = append(rows, []string{table.Fallback(), "(everything else)"})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Extensions"}, rows, nil))
			return nil
		},
	}
}
