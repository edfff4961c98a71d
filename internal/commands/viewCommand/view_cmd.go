package viewcommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
)

func NewViewCommand() *cobra.Command {
	var name string
	var fingerprint bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print a key's public half",
		Long:  "Print the named key's public key file to stdout, byte for byte.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("ssh-dir")
			if dir == "" {
				dir = config.SSHDir()
			}

			ring, err := keyringservice.New(dir)
			if err != nil {
				return err
			}

			if fingerprint {
				fp, err := ring.ReadFingerprint(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", fp.Type, fp.SHA256, fp.Comment)
				return nil
			}

			data, err := ring.ReadPublicKey(name)
			if err != nil {
				return err
			}

			// Verbatim passthrough, no trailing-newline fixups.
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the key (required)")
	cmd.Flags().BoolVarP(&fingerprint, "fingerprint", "F", false, "Print the SHA256 fingerprint instead of the raw key")
	cmd.MarkFlagRequired("name")

	return cmd
}
