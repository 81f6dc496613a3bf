package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cwdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// Line은 "<cwd> [<branch>] $ " 형태의 프롬프트 문자열을 만든다.
// color가 false면 스타일을 입히지 않는다.
func Line(values map[string]string, color bool) string {
	var b strings.Builder
	if cwd := values[FieldCwd]; cwd != "" {
		b.WriteString(paint(cwdStyle, cwd, color))
		b.WriteByte(' ')
	}
	if branch := values[FieldBranch]; branch != "" {
		b.WriteString(paint(branchStyle, "["+branch+"]", color))
		b.WriteByte(' ')
	}
	b.WriteString("$ ")
	return b.String()
}

func paint(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}
