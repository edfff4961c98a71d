package sshcommand

import (
	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	sshservice "github.com/entrpixx/esk/internal/services/sshService"
	"github.com/entrpixx/esk/internal/utils/execx"
)

// Swapped out in tests so no real ssh client runs.
var runner execx.Runner = execx.Host{}

func NewSSHCommand() *cobra.Command {
	var name, host, port string

	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Connect over SSH with a named key",
		Long: `Spawn the ssh client authenticated with exactly the named key.
The terminal is handed to ssh for the whole session, and its exit code
becomes esk's exit code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("ssh-dir")
			if dir == "" {
				dir = config.SSHDir()
			}

			ring, err := keyringservice.New(dir)
			if err != nil {
				return err
			}

			if port == "" {
				port = config.Port()
			}

			return sshservice.Connect(ring, runner, sshservice.ConnectOptions{
				Name: name,
				Host: host,
				Port: port,
			})
		},
	}

	// Declare help without a shorthand so -h can carry the destination.
	cmd.Flags().Bool("help", false, "help for ssh")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the key to authenticate with (required)")
	cmd.Flags().StringVarP(&host, "host", "h", "", "Destination as user@host (required)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "SSH port (default 22, or ssh.port from config)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("host")

	return cmd
}
