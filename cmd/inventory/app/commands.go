package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/inventory/cmd/add"
	"github.com/agentstation/inventory/cmd/inventory/cmd/list"
	"github.com/agentstation/inventory/cmd/inventory/cmd/remove"
	"github.com/agentstation/inventory/cmd/inventory/cmd/search"
	"github.com/agentstation/inventory/cmd/inventory/cmd/update"
	"github.com/agentstation/inventory/internal/cmd/completion"
	"github.com/agentstation/inventory/internal/menu"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/logging"
)

// NewAddCommand creates the add command with app dependencies.
func (a *App) NewAddCommand() *cobra.Command {
	return add.NewCommand(a)
}

// NewUpdateCommand creates the update command with app dependencies.
func (a *App) NewUpdateCommand() *cobra.Command {
	return update.NewCommand(a)
}

// NewDeleteCommand creates the delete command with app dependencies.
func (a *App) NewDeleteCommand() *cobra.Command {
	return remove.NewCommand(a)
}

// NewSearchCommand creates the search command with app dependencies.
func (a *App) NewSearchCommand() *cobra.Command {
	return search.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewMenuCommand creates the interactive menu command. The root command
// runs the same handler when no subcommand is given.
func (a *App) NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Menu shows a numbered list of actions and reads choices and product
fields from standard input until you choose Exit or input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(cmd.Context(), "menu")
			err = menu.New(catalog, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
			if errors.Is(err, context.Canceled) {
				// Interrupted between prompts; every change is already saved.
				return nil
			}
			return err
		},
	}
}

// NewCompletionCommand creates the shell completion command.
func (a *App) NewCompletionCommand() *cobra.Command {
	return completion.NewCommand()
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("inventory %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
