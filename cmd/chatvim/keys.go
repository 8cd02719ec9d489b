package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/dshills/chatvim/internal/engine/motion"
)

// keySection groups key reference rows under a title.
type keySection struct {
	Title string
	Rows  [][]string
}

// keySections returns the key reference. Motion rows come from the motion
// table so the reference matches the engine.
func keySections() []keySection {
	motions := keySection{Title: "Motions (Normal, Visual)"}
	for _, m := range motion.All() {
		motions.Rows = append(motions.Rows, []string{string(m.Key), m.Name})
	}

	return []keySection{
		motions,
		{
			Title: "Normal Mode",
			Rows: [][]string{
				{"i / I", "insert at cursor / line start"},
				{"a / A", "append after cursor / at line end"},
				{"o / O", "open line below / above"},
				{"v / V", "visual / visual line"},
				{"y{motion}", "yank to register"},
				{"yy", "yank line"},
				{"p / P", "paste after / before"},
				{"Enter", "send message"},
			},
		},
		{
			Title: "Visual Modes",
			Rows: [][]string{
				{"y", "yank selection"},
				{"d", "delete selection"},
				{"v / V", "switch or leave visual mode"},
			},
		},
		{
			Title: "Any Mode",
			Rows: [][]string{
				{"Esc", "leave insert / visual, cancel pending command"},
				{"Ctrl+S", "send message"},
				{"F2", "toggle vim"},
				{"Ctrl+Q / Ctrl+C", "quit"},
			},
		},
	}
}

// printKeys writes the key reference tables to w.
func printKeys(w io.Writer) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	for _, section := range keySections() {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
			Headers("Keys", "Action").
			Rows(section.Rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})

		if _, err := fmt.Fprintln(w, titleStyle.Render(section.Title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
