package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

func objectColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "name", Width: 20},
		{Title: "vertices", Width: 9},
		{Title: "lines", Width: 7},
		{Title: "faces", Width: 7},
		{Title: "x", Width: 8},
		{Title: "y", Width: 8},
		{Title: "z", Width: 8},
	}
}

// refreshObjectTable rebuilds the table rows from the scene.
func (m *Model) refreshObjectTable() {
	objs := m.scene.Objects()
	rows := make([]table.Row, 0, len(objs))
	for i, o := range objs {
		t := o.Translation
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			o.Name,
			fmt.Sprintf("%d", len(o.Vertices)),
			fmt.Sprintf("%d", len(o.Lines)),
			fmt.Sprintf("%d", len(o.Faces)),
			fmt.Sprintf("%.2f", t[3]),
			fmt.Sprintf("%.2f", t[7]),
			fmt.Sprintf("%.2f", t[11]),
		})
	}
	m.tbl.SetRows(rows)
}
