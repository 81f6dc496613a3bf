package lister

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render는 entries를 name/type/size/modified 표로 w에 쓴다.
// now는 상대 시각 표기의 기준이다.
func Render(w io.Writer, entries []Entry, now time.Time) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Name,
			e.Kind.String(),
			humanize.Bytes(e.Size),
			humanize.RelTime(e.Modified, now, "ago", "from now"),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("name", "type", "size", "modified").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return fmt.Errorf("lister.Render: %w", err)
	}
	return nil
}
