// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostpkg/hostpkg/internal/logger"
	"github.com/hostpkg/hostpkg/pkg/core"
)

var (
	cfgFile       string
	pkgManager    string
	skipOverrides bool
	overridesDir  string
	keepGoing     bool
	debug         bool
	config        *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hostpkg",
	Short: "One interface over the host's native package manager",
	Long: `hostpkg - native package manager front end

Installs and uninstalls packages through whichever native package manager
is present on the host (apt, dnf, pacman, apk, brew, choco, winget, ...),
with per-package override policies and automatic manager detection.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define the version flag ourselves so it gets the -v shorthand
	rootCmd.Flags().BoolP("version", "v", false, "version for hostpkg")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hostpkg/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&pkgManager, "package-manager", "p", "", "package manager to use (default auto)")
	rootCmd.PersistentFlags().BoolVarP(&skipOverrides, "skip-overrides", "s", false, "ignore override files")
	rootCmd.PersistentFlags().StringVar(&overridesDir, "overrides-dir", "", "directory holding override files (default overrides)")
	rootCmd.PersistentFlags().BoolVar(&keepGoing, "keep-going", false, "continue with remaining packages after a failure")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Flags override the config file
	if pkgManager != "" {
		config.PackageManager = pkgManager
	}
	if overridesDir != "" {
		config.OverridesDir = overridesDir
	}
	if skipOverrides {
		config.SkipOverrides = true
	}
	if keepGoing {
		config.KeepGoing = true
	}
	if debug {
		config.Debug = true
	}

	logger.Init(config.Debug)
}
