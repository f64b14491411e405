package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// navbarModel is the fixed bar of section links. It holds no selection of its own, the
// highlighted entry always comes from the page's navigator.
type navbarModel struct {
	title string
	id    string
	width int
}

func newNavbarModel(title string, zonePrefix string) navbarModel {
	return navbarModel{title: title, id: zonePrefix + "nav-"}
}

func (m navbarModel) zoneID(section nav.Section) string {
	return m.id + section.Key()
}

func (m navbarModel) Update(msg tea.Msg) (navbarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, section := range nav.Sections() {
			if info := zone.Get(m.zoneID(section)); info != nil && info.InBounds(msg) {
				return m, navigate(section)
			}
		}
	}

	return m, nil
}

func (m navbarModel) View(active nav.Section) string {
	if m.width == 0 {
		return ""
	}

	labels := []string{styles.NavInactive.Bold(true).Foreground(styles.Whiter).Render(m.title)}

	for _, section := range nav.Sections() {
		style := styles.NavInactive
		if section == active {
			style = styles.NavActive
		}

		labels = append(labels, zone.Mark(m.zoneID(section), style.Render(section.Label())))
	}

	return styles.NavContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
}
