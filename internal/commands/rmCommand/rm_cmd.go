package rmcommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
)

func NewRmCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a named SSH key pair",
		Long:  "Delete both halves of the named key pair. The public key is removed best-effort.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("ssh-dir")
			if dir == "" {
				dir = config.SSHDir()
			}

			ring, err := keyringservice.New(dir)
			if err != nil {
				return err
			}

			if err := ring.Remove(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed key %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the key (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}
