package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"gambol/config"
	"gambol/model"
)

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
)

func (a *AppView) updateViewportContent(gotoBottom bool) {
	var content strings.Builder

	for i, msg := range a.session.Transcript {
		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		if msg.Role == model.RoleUser {
			content.WriteString(formatUserMessage(timestamp, UserStyle.Render("You"), msg.Content))
			continue
		}

		body, ok := a.rendered[i]
		if !ok {
			body = msg.Content
		}
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, AssistantStyle.Render("Gambol"), body))
	}

	if a.busy {
		timestamp := DimStyle.Render(time.Now().Format("[15:04]"))
		content.WriteString(formatUserMessage(timestamp, UserStyle.Render("You"), a.pending))
		content.WriteString(fmt.Sprintf("%s %s\n%s %s\n\n", timestamp, AssistantStyle.Render("Gambol"), a.loadingSpinner.View(), a.waitingText()))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

func (a AppView) waitingText() string {
	if a.session.State.AwaitingHand() {
		return "Solving the hand..."
	}
	return "Thinking..."
}

func formatUserMessage(timestamp, role, content string) string {
	greenBold := "\x1b[32;1m"
	reset := "\x1b[0m"
	bar := greenBold + "┃" + reset

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))

	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}

	result.WriteString("\n")

	return result.String()
}

// renderTranscript queues a markdown render for every coach turn not yet cached.
func (a AppView) renderTranscript() tea.Cmd {
	if !a.ready {
		return nil
	}
	var cmds []tea.Cmd
	for i, msg := range a.session.Transcript {
		if msg.Role != model.RoleAssistant {
			continue
		}
		if _, ok := a.rendered[i]; ok {
			continue
		}
		cmds = append(cmds, renderMarkdownAsync(i, msg.Content, a.width))
	}
	return tea.Batch(cmds...)
}

func renderMarkdownAsync(index int, content string, width int) tea.Cmd {
	return func() tea.Msg {
		startTime := time.Now()
		rendered := renderMarkdown(content, width)
		if config.DebugLog != nil {
			config.DebugLog.Printf("[UI] Markdown for message %d rendered in %v", index, time.Since(startTime))
		}
		return markdownRenderedMsg{
			Index:    index,
			Source:   content,
			Rendered: rendered,
		}
	}
}

// renderMarkdown renders a coach turn for the terminal. Autolink stays off so
// URLs remain plain text for the terminal to detect.
func renderMarkdown(content string, width int) string {
	content = mdLinkRegex.ReplaceAllString(content, "$2")

	ext := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(ext)
	r := markdown.NewRenderer(max(width-4, 20), 0)
	doc := p.Parse([]byte(content))
	rendered := gomarkdown.Render(doc, r)

	// Inline code: blue background to red text
	out := inlineCodeRegex.ReplaceAllString(string(rendered), "\x1b[31m$1\x1b[0m")
	return strings.TrimRight(out, "\n")
}
