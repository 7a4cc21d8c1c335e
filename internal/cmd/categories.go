package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CategoriesCmd returns the `gitref categories` command.
func CategoriesCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List category labels, one per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := resolveCatalog(catalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, label := range cat.Categories() {
				fmt.Fprintln(out, label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "load commands from a YAML file instead of the built-in set")
	return cmd
}
