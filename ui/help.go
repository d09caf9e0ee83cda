package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHelpModal(width, height int) string {
	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("Gambol - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat"),
		"• Enter         Send hand or question",
		"• Alt+Enter     New line",
		"• Alt+N         New hand",
		"• Alt+Y         Copy last reply",
		"• Alt+E         Export transcript",
		"• PgUp/PgDn     Scroll",
		"• Alt+H         Toggle this help",
		"• Alt+Q         Quit",
	)

	tips := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Tips"),
		"• Include hero cards, board and action",
		"• Heads-up postflop spots only",
		"• Follow-ups reuse the solved strategy",
		"• Alt+N before pasting another hand",
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(chatActions),
		"    ",
		columnStyle.Render(tips),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(FormatFooter("Alt+H", "Close", "Esc", "Close"))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(min(100, max(width-4, 40)))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
