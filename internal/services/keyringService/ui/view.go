package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeExpand {
		return m.viewExpand()
	}
	return m.viewTable()
}

func (m BrowseModel) viewTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Keys in %s", m.ring.Dir)))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading keys...\n")
	case len(m.keys) == 0:
		b.WriteString("No managed keys found.\n")
	default:
		b.WriteString(m.tableComp.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: show public key  r: refresh  q/esc: quit"))

	return b.String()
}

func (m BrowseModel) viewExpand() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Public key: %s", m.expandName)))
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back  q: quit"))

	return b.String()
}
