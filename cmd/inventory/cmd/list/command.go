// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/internal/cmd/output"
)

// NewCommand creates the list command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "products",
		Aliases: []string{"ls"},
		Short:   "List every product in insertion order",
		Args:    cobra.NoArgs,
		Example: `  inventory list
  inventory list -o wide
  inventory list --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if plain {
				return catalog.Render(w)
			}

			format := output.DetectFormat(app.OutputFormat())
			app.Logger().Debug().
				Str("format", string(format)).
				Int("products", catalog.Len()).
				Msg("Listing products")
			return output.FormatProducts(w, catalog.List(), format)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one line per product, as the interactive menu does")

	return cmd
}
