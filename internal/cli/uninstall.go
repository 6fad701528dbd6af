// internal/cli/uninstall.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hostpkg/hostpkg/pkg/core"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [package...]",
	Short: "Uninstall one or more packages",
	Long: `Uninstall packages through the configured or auto-detected package manager.

Examples:
  hostpkg uninstall vim
  hostpkg uninstall git -p choco`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd.Context(), core.OpUninstall, args)
	},
}
