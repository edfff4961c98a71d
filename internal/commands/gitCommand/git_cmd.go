package gitcommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	gitservice "github.com/entrpixx/esk/internal/services/gitService"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

// Swapped out in tests so no real git runs.
var runner execx.Runner = execx.Host{}

func NewGitCommand() *cobra.Command {
	var name, dir string
	var show bool

	cmd := &cobra.Command{
		Use:   "git",
		Short: "Pin a git repository to a named key",
		Long: `Set the repository's core.sshCommand so git authenticates with exactly
the named key (IdentitiesOnly). Only the repository's own config is
touched, never the global one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				value, err := gitservice.ShowSSHCommand(dir)
				if err != nil {
					return err
				}
				if value == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No core.sshCommand set in %s\n", dir)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", value)
				return nil
			}

			sshDir, _ := cmd.Flags().GetString("ssh-dir")
			if sshDir == "" {
				sshDir = config.SSHDir()
			}

			ring, err := keyringservice.New(sshDir)
			if err != nil {
				return err
			}

			if err := gitservice.ConfigureKey(ring, runner, name, dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configured %s to use key %q\n", dir, name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the key (required unless --show)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Repository directory")
	cmd.Flags().BoolVar(&show, "show", false, "Print the repository's current core.sshCommand and exit")

	return cmd
}
