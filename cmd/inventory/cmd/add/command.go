// Package add implements the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
	"github.com/agentstation/inventory/internal/cmd/input"
	"github.com/agentstation/inventory/pkg/inventory"
)

// NewCommand creates the add command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var category, price, quantity string

	cmd := &cobra.Command{
		Use:     "add NAME",
		GroupID: "products",
		Short:   "Add a product to the inventory",
		Long: `Add creates a product and saves the inventory file. Names are unique:
adding a name that already exists changes nothing and exits non-zero.`,
		Args: cobra.ExactArgs(1),
		Example: `  inventory add Widget --category Tools --price 9.99 --quantity 5
  inventory add "Tornillo M4" -c Ferretería -p 0.05 -n 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			parsedPrice, err := input.ParsePrice(price)
			if err != nil {
				return err
			}
			parsedQuantity, err := input.ParseQuantity(quantity)
			if err != nil {
				return err
			}
			product, err := inventory.NewProduct(name, category, parsedPrice, parsedQuantity)
			if err != nil {
				return err
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			outcome, err := catalog.Add(product)
			if err != nil {
				return err
			}
			if !outcome.OK() {
				return outcome.Err(name)
			}

			app.Logger().Info().Str("product", name).Msg("Product added")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), outcome.Message(name))
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "product category")
	cmd.Flags().StringVarP(&price, "price", "p", "", "unit price, greater than 0")
	cmd.Flags().StringVarP(&quantity, "quantity", "n", "", "units in stock, 0 or greater")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}
