package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.tableComp = m.buildTable()
		m.vp.Width = msg.Width - 4
		m.vp.Height = msg.Height - 6
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeExpand {
			switch msg.String() {
			case "q", "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			case "esc":
				m.mode = modeTable
				return m, nil
			}
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.loadKeysCmd()
		case "enter":
			if name := m.selectedName(); name != "" {
				return m, m.loadPublicKeyCmd(name)
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.tableComp, cmd = m.tableComp.Update(msg)
		return m, cmd

	case keysLoadedMsg:
		m.keys = msg.keys
		m.fingerprints = msg.fingerprints
		m.loading = false
		m.errMsg = ""
		m.tableComp = m.buildTable()
		return m, nil

	case publicKeyMsg:
		m.mode = modeExpand
		m.expandName = msg.name
		m.vp.SetContent(msg.content)
		m.vp.GotoTop()
		return m, nil

	case error:
		m.errMsg = msg.Error()
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m BrowseModel) selectedName() string {
	row := m.tableComp.HighlightedRow()
	if name, ok := row.Data[colName].(string); ok {
		return name
	}
	return ""
}
