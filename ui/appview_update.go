package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gambol/config"
	"gambol/conversation"
	"gambol/storage"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Reserve space for title (1 line), separator (1 line), textarea (3 lines), and status bar (1 line)
		a.viewport.Width = a.width
		a.viewport.Height = max(a.height-6, 1)
		a.textarea.SetWidth(a.width)

		// Width changed, so every cached render is stale
		a.rendered = make(map[int]string)
		a.ready = true
		a.updateViewportContent(true)
		return a, a.renderTranscript()

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		a.updateViewportContent(true)
		return a, cmd

	case markdownRenderedMsg:
		// Drop renders for a transcript that has since been reset
		if msg.Index < len(a.session.Transcript) && a.session.Transcript[msg.Index].Content == msg.Source {
			a.rendered[msg.Index] = msg.Rendered
			a.updateViewportContent(true)
		}
		return a, nil

	case turnDoneMsg:
		return a.handleTurnDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			a.setNotice(fmt.Sprintf("Export failed: %v", msg.err), true)
		} else {
			a.setNotice("Exported to "+msg.path, false)
		}
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			switch msg.String() {
			case "alt+h", "esc", "q":
				a.showHelp = false
			case "ctrl+c", "alt+q":
				return a, tea.Quit
			}
			return a, nil
		}

		a.notice = ""

		switch msg.String() {
		case "ctrl+c", "alt+q":
			return a, tea.Quit
		case "alt+h":
			a.showHelp = true
			return a, nil
		case "pgup":
			a.viewport.HalfPageUp()
			return a, nil
		case "pgdown":
			a.viewport.HalfPageDown()
			return a, nil
		case "alt+y":
			a.copyLastReply()
			return a, nil
		case "alt+e":
			return a, a.exportTranscript()
		case "alt+n":
			return a, a.resetHand()
		case "enter":
			return a.submit()
		}

		if a.busy {
			return a, nil
		}
	}

	a.textarea, cmd = a.textarea.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// submit sends the textarea content as one turn. The turn runs against a clone
// of the session; the UI keeps showing the old one until it completes.
func (a AppView) submit() (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}

	text := strings.TrimSpace(a.textarea.Value())
	if text == "" {
		return a, nil
	}

	a.busy = true
	a.pending = text
	a.textarea.Reset()
	a.updateViewportContent(true)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[UI] Submitting turn in state %s (%d chars)", a.session.State, len(text))
	}

	return a, tea.Batch(a.loadingSpinner.Tick, a.runTurn(conversation.Submission{Text: text}))
}

func (a AppView) runTurn(sub conversation.Submission) tea.Cmd {
	working := a.session.Clone()
	orch := a.orchestrator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()
		reply, err := orch.HandleTurn(ctx, working, sub)
		return turnDoneMsg{session: working, reply: reply, err: err}
	}
}

func (a AppView) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	a.busy = false
	pending := a.pending
	a.pending = ""

	if msg.err != nil && conversation.IsValidation(msg.err) {
		// Nothing was recorded; give the text back for editing
		a.textarea.SetValue(pending)
		a.setNotice(msg.err.Error(), true)
		a.updateViewportContent(true)
		return a, nil
	}

	a.session = msg.session
	switch {
	case errors.Is(msg.err, conversation.ErrSolve):
		a.setNotice("Solver could not handle that hand", true)
	case errors.Is(msg.err, conversation.ErrLLM):
		a.setNotice("Model request failed", true)
	}
	if msg.err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[UI] Turn failed: %v", msg.err)
	}

	a.updateViewportContent(true)
	return a, a.renderTranscript()
}

func (a *AppView) resetHand() tea.Cmd {
	if a.busy {
		return nil
	}
	if _, err := a.orchestrator.HandleTurn(context.Background(), a.session, conversation.Submission{Reset: true}); err != nil {
		a.setNotice(fmt.Sprintf("Reset failed: %v", err), true)
		return nil
	}
	a.rendered = make(map[int]string)
	a.textarea.Reset()
	a.setNotice("New hand", false)
	a.updateViewportContent(true)
	return a.renderTranscript()
}

func (a *AppView) copyLastReply() {
	reply, ok := a.session.LastReply()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(reply); err != nil {
		a.setNotice(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	a.setNotice("Copied last reply", false)
}

func (a AppView) exportTranscript() tea.Cmd {
	if a.exports == nil {
		return func() tea.Msg {
			return exportDoneMsg{err: errors.New("export directory unavailable")}
		}
	}
	export := storage.FromSession(a.session.Clone(), a.providerName())
	exports := a.exports
	return func() tea.Msg {
		path, err := exports.Save(export)
		return exportDoneMsg{path: path, err: err}
	}
}
