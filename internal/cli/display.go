package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/seatwise/seatwise/pkg/seating"
)

// renderSeating renders the arrangement as a bordered table, one row per
// seating table in creation order.
func renderSeating(tables []seating.TableSeating) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, ts := range tables {
		occupants := "(empty)"
		if len(ts.Occupants) > 0 {
			occupants = strings.Join(ts.Occupants, ", ")
		}
		seats := fmt.Sprintf("%d/%d", len(ts.Occupants), ts.Capacity)
		rows = append(rows, []string{ts.Table, seats, occupants})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Table", "Seats", "Occupants").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(rows) {
				return base
			}
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 1:
				return base.Foreground(colorGray)
			default:
				if rows[row][2] == "(empty)" {
					return base.Foreground(colorDim)
				}
				return base.Foreground(colorWhite)
			}
		})

	return t.Render()
}

// renderClusters renders the discovered clusters, one line per group.
// Singleton clusters are summarised on a single dim line.
func renderClusters(clusters [][]string) string {
	var b strings.Builder
	singles := 0
	group := 0
	for _, cluster := range clusters {
		if len(cluster) == 1 {
			singles++
			continue
		}
		group++
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("Group %d:", group)))
		b.WriteString(" " + strings.Join(cluster, ", "))
		b.WriteString("\n")
	}
	if singles > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d people with no group", singles)))
		b.WriteString("\n")
	}
	return b.String()
}
