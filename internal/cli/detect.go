// internal/cli/detect.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostpkg/hostpkg/pkg/manager"
	"github.com/hostpkg/hostpkg/pkg/sysprobe"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show package managers on this host",
	Long:  `List the package managers registered for this platform, in priority order, and which one auto-detection would pick.`,
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	family, err := manager.DetectFamily()
	if err != nil {
		return err
	}

	descs, err := manager.DescriptorsFor(family)
	if err != nil {
		return err
	}

	probe := sysprobe.Default()
	selected, selErr := manager.NewSelector(probe).Select(manager.KindAuto, family)

	fmt.Printf("Platform: %s\n\n", family)
	fmt.Printf("Registered package managers:\n")
	for _, desc := range descs {
		marker := " "
		switch {
		case selErr == nil && desc.Kind == selected.Kind:
			marker = "*"
		case probe(desc.Bin):
			marker = "+"
		}
		fmt.Printf("  %s %s\n", marker, desc.Kind)
	}
	fmt.Printf("\n* = auto-selected, + = installed\n")

	if selErr != nil && !errors.Is(selErr, manager.ErrNoManagerFound) {
		return selErr
	}
	if selErr != nil {
		fmt.Printf("\nNo supported package manager is installed.\n")
	}
	return nil
}
