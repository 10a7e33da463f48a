// Package remove implements the delete command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/internal/cmd/completion"
)

// NewCommand creates the delete command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete NAME",
		GroupID: "products",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove a product from the inventory",
		Args:    cobra.ExactArgs(1),
		Example: `  inventory delete Widget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			outcome, err := catalog.Delete(name)
			if err != nil {
				return err
			}
			if !outcome.OK() {
				return outcome.Err(name)
			}

			app.Logger().Info().Str("product", name).Msg("Product deleted")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome.Message(name))
			return err
		},
	}

	cmd.ValidArgsFunction = completion.ProductNames(app)
	return cmd
}
