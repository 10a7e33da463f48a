package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/pkg/constants"
	"github.com/agentstation/inventory/pkg/errors"
	"github.com/agentstation/inventory/pkg/logging"
)

// Execute runs the inventory CLI with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Without a subcommand the root runs the interactive menu.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "inventory",
		Short:   "Product inventory tracker",
		Version: a.version,
		Long: `Inventory keeps a list of products (name, category, price, quantity)
in a local YAML or JSON file.

Run it without a command for the interactive menu, or use the
add, update, delete, search, and list commands from scripts.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.NewMenuCommand().RunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "products",
		Title: "Product Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/"+constants.ConfigName+".yaml)")
	flags.StringP("file", "f", constants.DefaultStoreFile, "inventory file (.json for JSON, otherwise YAML)")
	flags.String("store-format", "auto", "inventory file format: auto, yaml, json")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=error)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml")

	rootCmd.SetVersionTemplate("inventory {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the
// configuration with the parsed flags taking precedence and rebuilds
// the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	logger := NewLogger(config)
	a.logger = &logger
	logging.SetDefault(logger)

	if config.ConfigFile != "" {
		logger.Debug().Str("config", config.ConfigFile).Msg("Using config file")
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewAddCommand())
	rootCmd.AddCommand(a.NewUpdateCommand())
	rootCmd.AddCommand(a.NewDeleteCommand())
	rootCmd.AddCommand(a.NewSearchCommand())
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewMenuCommand())
	rootCmd.AddCommand(a.NewCompletionCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. A corrupt inventory
// file exits 2; every other failure exits 1.
func exitCode(err error) int {
	if errors.IsCorruptData(err) {
		return 2
	}
	return 1
}
