package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/garlicgarrison/blocky/board"
	"github.com/garlicgarrison/blocky/goal"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)
	styleDim   = lipgloss.NewStyle().Faint(true)
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4bc4d5"))
)

func swatch(c board.Colour) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

// renderGrid draws each unit cell as a two-column colour swatch.
func renderGrid(grid goal.Grid) string {
	var sb strings.Builder
	for _, row := range grid {
		for _, c := range row {
			sb.WriteString(swatch(c))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func renderLegend(grid goal.Grid) string {
	seen := make(map[board.Colour]bool)
	var parts []string
	for _, row := range grid {
		for _, c := range row {
			if seen[c] {
				continue
			}
			seen[c] = true
			parts = append(parts, swatch(c)+" "+c.Name())
		}
	}
	return strings.Join(parts, "  ")
}
