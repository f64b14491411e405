package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/ui/input"
	"github.com/fjanphilip/folio/internal/ui/styles"
)

const clearMessageTimeout = time.Second * 10

type statusBarModel struct {
	width       int
	statusMsg   string
	statusError bool
	statusSeq   uint64
	version     string
	contentPath string
}

func newStatusBarModel(version string, contentPath string) statusBarModel {
	return statusBarModel{version: version, contentPath: contentPath}
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err
		m.statusSeq++

		return m, clearErrorAfter(clearMessageTimeout, m.statusSeq)
	case clearStatusMessageMsg:
		if msg.seq != m.statusSeq {
			return m, nil
		}

		m.statusError = false
		m.statusMsg = ""
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

func (m statusBarModel) View(active nav.Section, percent float64) string {
	help := input.Default.Help.Help()
	args := []string{
		styles.StatusSection.Render(active.Label()),
		styles.StatusPercent.Render(fmt.Sprintf("%3.f%%", percent*100)),
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", help.Key, help.Desc)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	source := "built-in content"
	if m.contentPath != "" {
		source = m.contentPath
	}

	return styles.Faint.PaddingLeft(1).Render(source)
}
