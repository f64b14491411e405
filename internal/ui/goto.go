package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui/input"
	"github.com/fjanphilip/folio/internal/ui/styles"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

const maxGotoResults = 8

type gotoClosedMsg struct{}

func closeGoto() tea.Cmd {
	return func() tea.Msg { return gotoClosedMsg{} }
}

// gotoModel is the jump palette. Typing fuzzy matches against everything shown on the page and
// accepting a result navigates to the section holding it.
type gotoModel struct {
	input    textinput.Model
	entries  []portfolio.Entry
	matches  []portfolio.Entry
	selected int
	width    int
}

func newGotoModel(entries []portfolio.Entry) gotoModel {
	field := textinput.New()
	field.Placeholder = "Jump to..."
	field.Prompt = "/ "
	field.PromptStyle = styles.PalettePrompt
	field.CharLimit = 64
	field.Width = 40

	return gotoModel{input: field, entries: entries, matches: entries}
}

// open resets the palette for a new query.
func (m gotoModel) open() (gotoModel, tea.Cmd) {
	m.input.SetValue("")
	m.filter()

	return m, m.input.Focus()
}

func (m gotoModel) Update(msg tea.Msg) (gotoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Back):
			m.input.Blur()

			return m, closeGoto()
		case key.Matches(msg, input.Default.Accept):
			m.input.Blur()
			if m.selected < len(m.matches) {
				return m, tea.Batch(closeGoto(), navigate(m.matches[m.selected].Section))
			}

			return m, closeGoto()
		case msg.Type == tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}

			return m, nil
		case msg.Type == tea.KeyDown:
			if m.selected < min(len(m.matches), maxGotoResults)-1 {
				m.selected++
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter()

	return m, cmd
}

func (m *gotoModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	m.selected = 0

	if query == "" {
		m.matches = m.entries

		return
	}

	texts := make([]string, len(m.entries))
	for idx, entry := range m.entries {
		texts[idx] = entry.Text
	}

	found := fuzzy.Find(query, texts)
	m.matches = make([]portfolio.Entry, 0, len(found))

	for _, match := range found {
		m.matches = append(m.matches, m.entries[match.Index])
	}
}

func (m gotoModel) View() string {
	width := min(max(30, m.width-8), 72)
	rows := []string{m.input.View(), ""}

	if len(m.matches) == 0 {
		rows = append(rows, styles.PaletteHint.Render("no matches"))
	}

	for idx, entry := range m.matches[:min(len(m.matches), maxGotoResults)] {
		hint := styles.PaletteHint.Render(" " + entry.Section.Label())
		text := runewidth.Truncate(entry.Text, width-lipgloss.Width(hint)-2, "…")

		line := styles.PaletteMatch.Render("  " + text)
		if idx == m.selected {
			line = styles.PalettePrompt.Render("› " + text)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line, hint))
	}

	return styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
