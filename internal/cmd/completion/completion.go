// Package completion provides shell completion for the inventory CLI: the
// completion script command and dynamic completion of product names.
package completion

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/inventory/cmd/application"
)

// Shell type constants for completion commands.
const (
	// ShellBash represents the Bash shell.
	ShellBash = "bash"

	// ShellZsh represents the Zsh shell.
	ShellZsh = "zsh"

	// ShellFish represents the Fish shell.
	ShellFish = "fish"

	// ShellPowerShell represents PowerShell.
	ShellPowerShell = "powershell"
)

// Shells lists the supported shells.
var Shells = []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// NewCommand creates the completion command, which writes the completion
// script for a shell to stdout.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [" + strings.Join(Shells, "|") + "]",
		Short: "Generate a shell completion script",
		Long: `Completion writes a completion script for the given shell to stdout.

  source <(inventory completion bash)
  inventory completion zsh > "${fpath[1]}/_inventory"
  inventory completion fish > ~/.config/fish/completions/inventory.fish`,
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             Shells,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Generate(cmd.Root(), cmd.OutOrStdout(), args[0])
		},
	}
}

// Generate writes the completion script for shell.
func Generate(root *cobra.Command, w io.Writer, shell string) error {
	var err error
	switch shell {
	case ShellBash:
		err = root.GenBashCompletionV2(w, true)
	case ShellZsh:
		err = root.GenZshCompletion(w)
	case ShellFish:
		err = root.GenFishCompletion(w, true)
	case ShellPowerShell:
		err = root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}
	return nil
}

// ProductNames completes the first argument with the names in the catalog,
// described by their category. A catalog that cannot be loaded yields no
// suggestions.
func ProductNames(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		catalog, err := app.Catalog()
		if err != nil {
			app.Logger().Debug().Err(err).Msg("Product completion unavailable")
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var names []string
		for _, p := range catalog.List() {
			if !strings.HasPrefix(p.Name(), toComplete) {
				continue
			}
			if p.Category() == "" {
				names = append(names, p.Name())
			} else {
				names = append(names, p.Name()+"\t"+p.Category())
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
