package selfcommand

import (
	"github.com/spf13/cobra"
)

// NewSelfCommand creates the 'self' parent command
func NewSelfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Manage this esk CLI",
		Long:  "Self-management operations for esk, e.g. package and environment info.",
	}

	cmd.AddCommand(NewPackageInfoCommand())

	return cmd
}
