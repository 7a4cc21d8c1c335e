package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strelow/gitref/internal/catalog"
)

// ListCmd returns the `gitref list` command.
func ListCmd() *cobra.Command {
	var (
		catalogPath string
		category    string
		search      string
		asYAML      bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commands matching the given filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := resolveCatalog(catalogPath)
			if err != nil {
				return err
			}

			state := catalog.State{Search: search, Category: category}
			if state.Category == "" {
				state.Category = catalog.AllCategories
			}
			records := cat.Filter(state)
			out := cmd.OutOrStdout()

			if asYAML {
				// The YAML form round-trips: it is itself a loadable catalog.
				data, err := yaml.Marshal(catalog.Catalog{Commands: records})
				if err != nil {
					return fmt.Errorf("encode commands: %w", err)
				}
				fmt.Fprint(out, string(data))
				return nil
			}

			if len(records) > 0 {
				idW, catW := len("ID"), len("CATEGORY")
				for _, r := range records {
					if len(r.ID) > idW {
						idW = len(r.ID)
					}
					if len(r.Category) > catW {
						catW = len(r.Category)
					}
				}
				fmt.Fprintf(out, "%-*s  %-*s  %s\n", idW, "ID", catW, "CATEGORY", "TITLE")
				for _, r := range records {
					fmt.Fprintf(out, "%-*s  %-*s  %s\n", idW, r.ID, catW, r.Category, r.Title)
				}
				fmt.Fprintln(out)
			}
			if len(records) == 1 {
				fmt.Fprintln(out, "1 command")
			} else {
				fmt.Fprintf(out, "%d commands\n", len(records))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "load commands from a YAML file instead of the built-in set")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only commands in this category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only commands matching this search text")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the matching commands as YAML")
	return cmd
}
