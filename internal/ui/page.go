package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui/input"
	zone "github.com/lrstanley/bubblezone"
)

// pageModel is the scrollable portfolio page. It owns the layout the navigator measures and the
// viewport the navigator scrolls. The pointer fields are shared between copies of the model so
// that a navigator outliving the copy that mounted it still sees the live page.
type pageModel struct {
	content    portfolio.Portfolio
	conf       config.Config
	zonePrefix string
	layout     *pageLayout
	scroller   *scroller
	navigator  *nav.Navigator
	renderer   *renderer
	width      int
	height     int
}

func newPageModel(content portfolio.Portfolio, conf config.Config, zonePrefix string) pageModel {
	layout := newPageLayout(conf.Nav.RowHeight)
	port := newScroller(0, 0, conf.Nav.RowHeight, conf.SmoothScroll)
	render := newRenderer(content, conf.MarkdownStyle)

	model := pageModel{
		content:    content,
		conf:       conf,
		zonePrefix: zonePrefix,
		layout:     layout,
		scroller:   port,
		navigator:  nav.New(layout, port, conf.Nav.Options()),
		renderer:   render,
	}

	render.heroZone = model.heroZoneID
	if zonePrefix != "" {
		render.mark = zone.Mark
	}

	return model
}

func (m pageModel) heroZoneID(section nav.Section) string {
	return m.zonePrefix + "hero-" + section.Key()
}

// Active is the section currently highlighted in the navbar.
func (m pageModel) Active() nav.Section {
	return m.navigator.Active()
}

func (m pageModel) mounted() bool {
	return m.navigator.Mounted()
}

// unmount detaches the page's navigator. Pending recomputations are dropped.
func (m pageModel) unmount() {
	m.scroller.stop()
	m.navigator.Unmount()
}

// resize renders the page for the new size. The navigator is mounted the first time the page
// has a size to measure.
func (m pageModel) resize(width int, height int) (pageModel, tea.Cmd) {
	m.width = width
	m.height = max(1, height)
	m.renderer.width = width
	m.renderer.height = m.height

	before := m.scroller.viewport.YOffset
	m.scroller.resize(width, m.height)
	m.scroller.setContent(m.renderer.render(m.layout))

	if !m.navigator.Mounted() {
		m.navigator.Mount()
		slog.Debug("Page mounted", slog.Int("width", width), slog.Int("height", m.height))
	}

	if m.scroller.viewport.YOffset != before {
		return m, m.scrolled()
	}

	return m, nil
}

// restore moves a freshly built page to the row a previous page was showing.
func (m pageModel) restore(row int) tea.Cmd {
	if !m.scroller.scrollToRow(row) && row == 0 {
		return nil
	}

	return m.scrolled()
}

// scrolled reports a scroll event to the navigator, scheduling the debounced recompute.
func (m pageModel) scrolled() tea.Cmd {
	ticket, scheduled := m.navigator.Scrolled()
	if !scheduled {
		return nil
	}

	return settleAfter(m.navigator.Debounce(), ticket)
}

func (m pageModel) navigate(section nav.Section) tea.Cmd {
	before := m.scroller.viewport.YOffset
	if !m.navigator.Navigate(section) {
		slog.Debug("Navigation target not rendered", slog.String("section", section.Key()))

		return nil
	}

	if cmd := m.scroller.takeTick(); cmd != nil {
		return cmd
	}

	if m.scroller.viewport.YOffset != before {
		return m.scrolled()
	}

	return nil
}

func (m pageModel) Update(msg tea.Msg) (pageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		return m, m.navigate(msg.section)
	case settleMsg:
		m.navigator.Settle(msg.ticket)

		return m, nil
	case scrollFrameMsg:
		moved, next := m.scroller.step(msg.animation)
		if moved {
			return m, tea.Batch(next, m.scrolled())
		}

		return m, next
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.zonePrefix != "" && msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for _, section := range nav.Sections() {
				if info := zone.Get(m.heroZoneID(section)); info != nil && info.InBounds(msg) {
					return m, navigate(section)
				}
			}
		}

		moved, cmd := m.scroller.update(msg)
		if moved {
			return m, tea.Batch(cmd, m.scrolled())
		}

		return m, cmd
	}

	return m, nil
}

func (m pageModel) updateKey(msg tea.KeyMsg) (pageModel, tea.Cmd) {
	for section, binding := range sectionBindings() {
		if key.Matches(msg, binding) {
			return m, m.navigate(section)
		}
	}

	var moved bool

	switch {
	case key.Matches(msg, input.Default.NextSection):
		return m, m.navigate(m.Active().Next())
	case key.Matches(msg, input.Default.PrevSection):
		return m, m.navigate(m.Active().Prev())
	case key.Matches(msg, input.Default.Accept):
		// The banner button under the middle of the screen jumps to its section.
		if section, found := m.layout.heroAt(m.scroller.viewport.YOffset + m.height/2); found {
			return m, m.navigate(section)
		}

		return m, nil
	case key.Matches(msg, input.Default.Up):
		moved = m.scroller.scrollBy(-1)
	case key.Matches(msg, input.Default.Down):
		moved = m.scroller.scrollBy(1)
	case key.Matches(msg, input.Default.PageUp):
		moved = m.scroller.scrollBy(-m.height)
	case key.Matches(msg, input.Default.PageDown):
		moved = m.scroller.scrollBy(m.height)
	case key.Matches(msg, input.Default.Top):
		moved = m.scroller.scrollToRow(0)
	case key.Matches(msg, input.Default.Bottom):
		moved = m.scroller.scrollToRow(m.scroller.maxRow())
	}

	if moved {
		return m, m.scrolled()
	}

	return m, nil
}

func sectionBindings() map[nav.Section]key.Binding {
	return map[nav.Section]key.Binding{
		nav.SectionProfile:      input.Default.Profile,
		nav.SectionSkills:       input.Default.Skills,
		nav.SectionProjects:     input.Default.Projects,
		nav.SectionCertificates: input.Default.Certificates,
		nav.SectionContact:      input.Default.Contact,
	}
}

func (m pageModel) scrollPercent() float64 {
	return m.scroller.viewport.ScrollPercent()
}

func (m pageModel) View() string {
	return m.scroller.viewport.View()
}

// RenderStatic draws the full page once without any interactive state.
func RenderStatic(content portfolio.Portfolio, conf config.Config, width int, height int) string {
	render := newRenderer(content, conf.MarkdownStyle)
	render.width = width
	render.height = max(1, height)

	return render.render(newPageLayout(conf.Nav.RowHeight))
}
