package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrorModal is a standalone program for errors that stop Gambol before the
// chat screen can start (bad settings, unknown provider). hint, when set, points
// at what to fix and is shown under the message.
type ErrorModal struct {
	title   string
	message string
	hint    string
	width   int
	height  int
}

func NewErrorModal(title, message, hint string) ErrorModal {
	return ErrorModal{
		title:   title,
		message: message,
		hint:    hint,
	}
}

func (m ErrorModal) Init() tea.Cmd {
	return nil
}

func (m ErrorModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ErrorModal) View() string {
	if m.width < 20 || m.height < 10 {
		return "Terminal too small"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.box(min(64, m.width-6)))
}

// box lays out the card: suit banner, title, message, optional hint, keys.
func (m ErrorModal) box(width int) string {
	inner := max(width-4, 10)

	banner := DimStyle.Render("♠ ♥ ♦ ♣")
	title := ErrorStyle.Render("Gambol can't start: " + m.title)

	body := lipgloss.NewStyle().Width(inner).Render(strings.TrimSpace(m.message))

	rows := []string{banner, title, "", body}
	if m.hint != "" {
		rows = append(rows, "", DimStyle.Width(inner).Render(m.hint))
	}
	rows = append(rows, "", FormatFooter("Enter", "Quit"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dangerColor).
		Padding(1, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
