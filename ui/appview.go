package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gambol/config"
	"gambol/conversation"
	"gambol/prompt"
	"gambol/storage"
)

// turnTimeout bounds one submission: solver plus model.
const turnTimeout = 3 * time.Minute

type AppView struct {
	orchestrator *conversation.Orchestrator
	session      *conversation.Session
	exports      *storage.ExportStorage

	// UI Components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	// A turn is in flight; input is ignored until turnDoneMsg arrives.
	busy    bool
	pending string

	loadingSpinner spinner.Model
	showHelp       bool

	// rendered caches terminal markdown per transcript index.
	rendered map[int]string

	notice      string
	noticeIsErr bool
}

// NewAppView builds the chat screen around a fresh session. exports may be nil,
// in which case export is reported as unavailable.
func NewAppView(orch *conversation.Orchestrator, exports *storage.ExportStorage) AppView {
	ta := textarea.New()
	ta.Placeholder = conversation.ExampleHandHistory
	ta.Focus()
	ta.CharLimit = conversation.MaxInputLength
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Alt+Enter for newline, Enter submits
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AssistantStyle

	return AppView{
		orchestrator:   orch,
		session:        conversation.NewSession(),
		exports:        exports,
		viewport:       viewport.New(0, 0),
		textarea:       ta,
		loadingSpinner: sp,
		rendered:       make(map[int]string),
	}
}

func (a AppView) Init() tea.Cmd {
	return textarea.Blink
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading Gambol..."
	}

	if a.showHelp {
		return renderHelpModal(a.width, a.height)
	}

	title := TitleStyle.Render("Gambol") + DimStyle.Render(" · GTO coach for 6-max no-limit hold'em")
	separator := DimStyle.Render(strings.Repeat("─", a.width))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		separator,
		a.viewport.View(),
		a.textarea.View(),
		a.statusBar(),
	)
}

// statusBar shows the model, the conversation state and what is known about the
// current hand, or a transient notice when one is set.
func (a AppView) statusBar() string {
	if a.notice != "" {
		style := NoticeStyle
		if a.noticeIsErr {
			style = ErrorStyle
		}
		return style.Render(runewidth.Truncate(a.notice, a.width, "…"))
	}

	parts := []string{a.providerName(), a.session.State.String()}
	if a.session.Hand != nil {
		parts = append(parts, a.session.Hand.Summary())
	}
	if action, pct, ok := prompt.TopAction(a.session.Strategy); ok {
		parts = append(parts, fmt.Sprintf("top: %s %.1f%%", action, pct))
	}
	if a.busy {
		parts = append(parts, "thinking")
	} else {
		parts = append(parts, "Alt+H help")
	}

	return StatusStyle.Render(runewidth.Truncate(strings.Join(parts, " · "), a.width, "…"))
}

func (a AppView) providerName() string {
	if a.orchestrator == nil || a.orchestrator.Provider() == nil {
		return "no model"
	}
	return a.orchestrator.Provider().GetDisplayName()
}

func (a *AppView) setNotice(text string, isErr bool) {
	a.notice = text
	a.noticeIsErr = isErr
	if config.DebugLog != nil && isErr {
		config.DebugLog.Printf("[UI] %s", text)
	}
}
