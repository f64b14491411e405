package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/nav"
)

// navigateMsg asks the page to jump to a section, as if its navbar entry was clicked.
type navigateMsg struct {
	section nav.Section
}

func navigate(section nav.Section) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{section: section}
	}
}

// settleMsg is delivered once the scroll debounce window has elapsed.
type settleMsg struct {
	ticket nav.Ticket
}

func settleAfter(delay time.Duration, ticket nav.Ticket) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return settleMsg{ticket: ticket}
	})
}

// scrollFrameMsg advances an animated scroll by one frame.
type scrollFrameMsg struct {
	animation uint64
}

func scrollFrame(delay time.Duration, animation uint64) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return scrollFrameMsg{animation: animation}
	})
}

// clearStatusMessageMsg only clears the message it was scheduled for, identified by seq.
type clearStatusMessageMsg struct {
	seq uint64
}

func clearErrorAfter(t time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{seq: seq}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

// ContentErrorMsg reports a portfolio reload that failed. The previous content stays visible.
type ContentErrorMsg struct {
	Err error
}
