package ui

import (
	"gambol/conversation"
)

// turnDoneMsg carries the working copy a turn ran against back to the UI.
type turnDoneMsg struct {
	session *conversation.Session
	reply   conversation.Reply
	err     error
}

type markdownRenderedMsg struct {
	Index    int
	Source   string
	Rendered string
}

type exportDoneMsg struct {
	path string
	err  error
}
