package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ShowCmd returns the `gitref show` command.
func ShowCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one command in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := resolveCatalog(catalogPath)
			if err != nil {
				return err
			}

			r, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown command id: %s", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  [%s]\n", r.Title, r.Category)
			fmt.Fprintf(out, "id: %s\n\n", r.ID)
			fmt.Fprintln(out, r.Description)
			fmt.Fprintln(out, "\nsyntax:")
			for _, line := range strings.Split(r.Syntax, "\n") {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintln(out, "\nexamples:")
			for _, example := range r.Examples {
				fmt.Fprintf(out, "  %s\n", example)
			}
			if r.HasNotes() {
				fmt.Fprintln(out, "\nnotes:")
				for _, note := range r.Notes {
					fmt.Fprintf(out, "  - %s\n", note)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "load commands from a YAML file instead of the built-in set")
	return cmd
}
