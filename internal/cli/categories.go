package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List ad categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := api.NewCommonAPI(client).ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories defined.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %s\n", "ID", "NAME")
			for _, cat := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %s\n", cat.CategoryID, cat.CategoryName)
			}
			return nil
		},
	}
}
