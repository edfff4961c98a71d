// The root command for the CLI.
// This root 'composes' the esk subcommands and provides global config flags.
package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	gencommand "github.com/entrpixx/esk/internal/commands/genCommand"
	gitcommand "github.com/entrpixx/esk/internal/commands/gitCommand"
	lscommand "github.com/entrpixx/esk/internal/commands/lsCommand"
	rmcommand "github.com/entrpixx/esk/internal/commands/rmCommand"
	selfcommand "github.com/entrpixx/esk/internal/commands/selfCommand"
	sshcommand "github.com/entrpixx/esk/internal/commands/sshCommand"
	versioncommand "github.com/entrpixx/esk/internal/commands/versionCommand"
	viewcommand "github.com/entrpixx/esk/internal/commands/viewCommand"

	"github.com/entrpixx/esk/internal/config"
)

// NewRootCommand builds a fresh root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "esk",
		Short: "Manage named SSH keys",
		Long: `esk manages named SSH key pairs (id_ed25519_<name>) under a single
directory, connects over SSH with a chosen key, and pins git
repositories to a key. Key generation, SSH sessions and git config
writes are delegated to ssh-keygen, ssh and git.`,
		// Precondition failures print only the error; usage is reserved
		// for actual usage errors (unknown command/flag, missing flag).
		SilenceUsage: true,
		// Bare invocation shows help and succeeds.
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig(cmd.Root().PersistentFlags(), cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON/YAML/TOML/env)")
	root.PersistentFlags().String("ssh-dir", "", "base directory for managed keys (default ~/.ssh)")

	root.AddCommand(gencommand.NewGenCommand())
	root.AddCommand(lscommand.NewLsCommand())
	root.AddCommand(viewcommand.NewViewCommand())
	root.AddCommand(rmcommand.NewRmCommand())
	root.AddCommand(sshcommand.NewSSHCommand())
	root.AddCommand(gitcommand.NewGitCommand())
	root.AddCommand(versioncommand.NewVersionCommand())
	root.AddCommand(selfcommand.NewSelfCommand())

	return root
}

// Execute runs the root command. Exit codes from spawned external tools
// (ssh in particular) pass through unchanged; every other failure exits 1.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
