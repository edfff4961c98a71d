package ui

import (
	t "github.com/evertras/bubble-table/table"
)

const (
	colName        = "name"
	colFingerprint = "fingerprint"
	colModified    = "modified"
)

func (m BrowseModel) buildTable() t.Model {
	// widths: name gets what the fingerprint column leaves over
	fpWidth := 50
	modWidth := 17
	nameWidth := m.termWidth - fpWidth - modWidth - 8
	if nameWidth < 12 {
		nameWidth = 12
	}

	cols := []t.Column{
		t.NewColumn(colName, "Name", nameWidth),
		t.NewColumn(colFingerprint, "Fingerprint", fpWidth),
		t.NewColumn(colModified, "Modified", modWidth),
	}

	var rows []t.Row
	for _, k := range m.keys {
		modified := "-"
		if !k.ModTime.IsZero() {
			modified = k.ModTime.Format("2006-01-02 15:04")
		}
		rows = append(rows, t.NewRow(t.RowData{
			colName:        k.Name,
			colFingerprint: m.fingerprints[k.Name],
			colModified:    modified,
		}))
	}

	return t.New(cols).
		WithRows(rows).
		Focused(true).
		WithPageSize(m.pageSize())
}

func (m BrowseModel) pageSize() int {
	// leave room for the header, borders and the help line
	size := m.termHeight - 7
	if size < 3 {
		size = 3
	}
	return size
}
