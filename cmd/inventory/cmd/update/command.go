// Package update implements the update command.
package update

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/internal/cmd/completion"
	"github.com/agentstation/inventory/internal/cmd/input"
)

// NewCommand creates the update command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var price, quantity string

	cmd := &cobra.Command{
		Use:     "update NAME",
		GroupID: "products",
		Short:   "Change a product's price or quantity",
		Long: `Update changes the price, the quantity, or both. A field left out (or
given as an empty string) keeps its current value. Invalid values
change nothing.`,
		Args: cobra.ExactArgs(1),
		Example: `  inventory update Widget --price 12.50
  inventory update Widget --quantity 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			newPrice, err := input.ParseOptionalPrice(price)
			if err != nil {
				return err
			}
			newQuantity, err := input.ParseOptionalQuantity(quantity)
			if err != nil {
				return err
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			outcome, err := catalog.Update(name, newPrice, newQuantity)
			if err != nil {
				return err
			}
			if !outcome.OK() {
				return outcome.Err(name)
			}

			app.Logger().Info().
				Str("product", name).
				Bool("price", newPrice != nil).
				Bool("quantity", newQuantity != nil).
				Msg("Product updated")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome.Message(name))
			return err
		},
	}

	cmd.ValidArgsFunction = completion.ProductNames(app)
	cmd.Flags().StringVarP(&price, "price", "p", "", "new unit price")
	cmd.Flags().StringVarP(&quantity, "quantity", "n", "", "new units in stock")

	return cmd
}
