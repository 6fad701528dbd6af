// internal/cli/install.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hostpkg/hostpkg/pkg/core"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more packages",
	Long: `Install packages through the configured or auto-detected package manager.

Examples:
  hostpkg install vim
  hostpkg install git -p choco
  hostpkg install curl wget jq --skip-overrides`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd.Context(), core.OpInstall, args)
	},
}
