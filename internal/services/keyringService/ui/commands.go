package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// loadKeysCmd re-reads the keyring from disk.
func (m BrowseModel) loadKeysCmd() tea.Cmd {
	return func() tea.Msg {
		keys, err := m.ring.List()
		if err != nil {
			return err
		}

		fps := make(map[string]string, len(keys))
		for _, k := range keys {
			fp, err := m.ring.ReadFingerprint(k.Name)
			if err != nil {
				fps[k.Name] = "-"
				continue
			}
			fps[k.Name] = fp.SHA256
		}

		return keysLoadedMsg{keys: keys, fingerprints: fps}
	}
}

// loadPublicKeyCmd reads the selected key's public line for the expand view.
func (m BrowseModel) loadPublicKeyCmd(name string) tea.Cmd {
	return func() tea.Msg {
		data, err := m.ring.ReadPublicKey(name)
		if err != nil {
			return fmt.Errorf("read public key: %w", err)
		}
		return publicKeyMsg{name: name, content: strings.TrimRight(string(data), "\n")}
	}
}
