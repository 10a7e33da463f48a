// Package search implements the search command.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/internal/cmd/completion"
	"github.com/agentstation/inventory/internal/cmd/output"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/inventory"
)

// NewCommand creates the search command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search NAME",
		GroupID: "products",
		Aliases: []string{"find", "get"},
		Short:   "Show one product by exact name",
		Args:    cobra.ExactArgs(1),
		Example: `  inventory search Widget
  inventory search Widget -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			product, ok := catalog.Find(name)
			if !ok {
				return errors.NewNotFoundError("product", name)
			}

			w := cmd.OutOrStdout()
			switch format := output.DetectFormat(app.OutputFormat()); format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(w, product.Record())
			default:
				return output.FormatProducts(w, []inventory.Product{product}, format)
			}
		},
	}

	cmd.ValidArgsFunction = completion.ProductNames(app)
	return cmd
}
