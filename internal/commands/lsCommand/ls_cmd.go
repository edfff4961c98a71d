package lscommand

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/entrpixx/esk/internal/config"
	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
	"github.com/entrpixx/esk/internal/services/keyringService/ui"
	"github.com/entrpixx/esk/internal/utils/spinner"
)

func NewLsCommand() *cobra.Command {
	var plain, interactive bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List managed SSH keys",
		Long:  "List every id_ed25519_<name> key pair in the key directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("ssh-dir")
			if dir == "" {
				dir = config.SSHDir()
			}

			ring, err := keyringservice.New(dir)
			if err != nil {
				return err
			}

			// A missing key directory just means there is nothing to list.
			if !ring.Exists() {
				fmt.Fprintf(cmd.OutOrStdout(), "No key directory at %s; nothing to list.\n", ring.Dir)
				return nil
			}

			if interactive {
				return ui.Browse(ring)
			}

			keys, err := ring.List()
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No managed keys found in %s.\n", ring.Dir)
				return nil
			}

			if plain {
				for _, k := range keys {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k.Name, k.PublicKeyPath)
				}
				return nil
			}

			stop := spinner.StartSpinner("Scanning keys...")
			rows := buildRows(ring, keys)
			stop()

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Name", "Public Key", "Fingerprint", "Modified"})
			tw.AppendRows(rows)
			tw.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print name and path only, tab separated")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse keys in an interactive table")

	return cmd
}

func buildRows(ring keyringservice.Keyring, keys []keyringservice.Key) []table.Row {
	rows := make([]table.Row, 0, len(keys))

	for _, k := range keys {
		fingerprint := "-"
		if fp, err := ring.ReadFingerprint(k.Name); err == nil {
			fingerprint = fp.SHA256
		}

		modified := "-"
		if !k.ModTime.IsZero() {
			modified = k.ModTime.Format("2006-01-02 15:04")
		}

		rows = append(rows, table.Row{k.Name, k.PublicKeyPath, fingerprint, modified})
	}

	return rows
}
