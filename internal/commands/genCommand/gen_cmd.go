package gencommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	keygenservice "github.com/entrpixx/esk/internal/services/keygenService"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

// Swapped out in tests so no real ssh-keygen runs.
var runner execx.Runner = execx.Host{}

func NewGenCommand() *cobra.Command {
	var name, email, dir string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a new named SSH key pair",
		Long:  "Generate an Ed25519 key pair named id_ed25519_<name> via ssh-keygen. Existing keys are never overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = config.SSHDir()
			}

			ring, err := keyringservice.New(dir)
			if err != nil {
				return err
			}

			privPath, err := keygenservice.GenerateKey(ring, runner, keygenservice.Options{
				Name:  name,
				Email: email,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created key %q at %s\n", name, privPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name for the key (required)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email to embed as the key comment (defaults to the name)")
	cmd.Flags().StringVarP(&dir, "ssh-dir", "f", "", "Directory to store this key in (default ~/.ssh)")
	cmd.MarkFlagRequired("name")

	return cmd
}
