package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/fracpde/solution"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// renderSolution prints completed levels as a table: one row per t_n, one
// column per x_j, labels and values rounded to decimals.
func renderSolution(sol *solution.Solution, decimals int) string {
	g := sol.Grid()
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', decimals, 64) }

	headers := make([]string, 0, g.N()+1)
	headers = append(headers, "t \\ x")
	for _, x := range g.X() {
		headers = append(headers, format(x))
	}

	rows := make([][]string, 0, sol.Completed())
	for n := 0; n < sol.Completed(); n++ {
		row, err := sol.Row(n)
		if err != nil {
			break
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, format(g.TAt(n)))
		for _, u := range row {
			cells = append(cells, format(u))
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		}).
		Render()
}
