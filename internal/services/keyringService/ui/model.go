package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	t "github.com/evertras/bubble-table/table"

	keyringservice "github.com/entrpixx/esk/internal/services/keyringService"
)

type viewMode int

const (
	modeTable viewMode = iota
	modeExpand
)

// BrowseModel is an interactive table over the keys in one keyring.
type BrowseModel struct {
	ring keyringservice.Keyring

	mode viewMode
	keys []keyringservice.Key
	// fingerprints by key name; "-" when the public key didn't parse
	fingerprints map[string]string

	selectedIndex int
	errMsg        string
	loading       bool

	// expand (scrollable public key line)
	expandName string
	vp         viewport.Model

	tableComp  t.Model
	termWidth  int
	termHeight int

	quitting bool
}

// NewBrowseModel builds the browser for ring. Keys are loaded by Init.
func NewBrowseModel(ring keyringservice.Keyring) BrowseModel {
	return BrowseModel{
		ring:         ring,
		mode:         modeTable,
		fingerprints: make(map[string]string),
		loading:      true,
		termWidth:    80,
		termHeight:   24,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return m.loadKeysCmd()
}

// Browse runs the interactive key browser until the user quits.
func Browse(ring keyringservice.Keyring) error {
	p := tea.NewProgram(NewBrowseModel(ring), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
