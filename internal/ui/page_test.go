package ui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/portfolio"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 100
	testHeight = 30
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testConfig(smooth bool) config.Config {
	conf := config.Default()
	conf.MarkdownStyle = "notty"
	conf.SmoothScroll = smooth

	return conf
}

func mountedPage(t *testing.T, smooth bool) pageModel {
	t.Helper()

	page := newPageModel(portfolio.Default(), testConfig(smooth), "")
	page, _ = page.resize(testWidth, testHeight)
	require.True(t, page.mounted())

	return page
}

// settle runs a debounce command to completion and feeds the result back to the page.
func settle(t *testing.T, page pageModel, cmd tea.Cmd) pageModel {
	t.Helper()

	require.NotNil(t, cmd)
	msg := cmd()
	_, isSettle := msg.(settleMsg)
	require.True(t, isSettle)

	page, _ = page.Update(msg)

	return page
}

func TestRenderExtentsContiguous(t *testing.T) {
	render := newRenderer(portfolio.Default(), "notty")
	render.width = testWidth
	render.height = testHeight
	layout := newPageLayout(config.Default().Nav.RowHeight)

	body := render.render(layout)

	row := 0
	for _, section := range nav.Sections() {
		hero, found := layout.heroes[section]
		require.True(t, found)
		require.Equal(t, row, hero.Top)
		require.GreaterOrEqual(t, hero.Height, testHeight)

		extent, found := layout.rows[section]
		require.True(t, found)
		require.Equal(t, hero.Bottom(), extent.Top)
		require.Positive(t, extent.Height)

		row = extent.Bottom()
	}

	require.Equal(t, lipgloss.Height(body), row)
	require.GreaterOrEqual(t, layout.rows[nav.SectionContact].Height, testHeight)
}

func TestLayoutScalesRows(t *testing.T) {
	layout := newPageLayout(20)
	layout.rows[nav.SectionSkills] = nav.Extent{Top: 40, Height: 10}

	extent, found := layout.Extent(nav.SectionSkills)
	require.True(t, found)
	require.Equal(t, nav.Extent{Top: 800, Height: 200}, extent)

	_, found = layout.Extent(nav.SectionContact)
	require.False(t, found)
}

func TestRenderStatic(t *testing.T) {
	out := RenderStatic(portfolio.Default(), testConfig(false), testWidth, testHeight)

	require.Contains(t, out, "All rights reserved.")
	require.Contains(t, out, "Laravel")
}

func TestPageStartsOnProfile(t *testing.T) {
	page := mountedPage(t, false)

	require.Equal(t, nav.SectionProfile, page.Active())
	require.Equal(t, 0, page.scroller.viewport.YOffset)
}

func TestPageNavigate(t *testing.T) {
	page := mountedPage(t, false)

	cmd := page.navigate(nav.SectionProjects)
	require.Equal(t, nav.SectionProjects, page.Active())

	extent := page.layout.rows[nav.SectionProjects]
	navbarRows := config.Default().Nav.NavbarHeight / config.Default().Nav.RowHeight
	require.Equal(t, extent.Top-navbarRows, page.scroller.viewport.YOffset)

	// The jump is itself a scroll, the recompute that follows agrees with the target.
	page = settle(t, page, cmd)
	require.Equal(t, nav.SectionProjects, page.Active())
}

func TestPageScrollRecompute(t *testing.T) {
	page := mountedPage(t, false)
	opts := config.Default().Nav.Options()

	extent, found := page.layout.Extent(nav.SectionSkills)
	require.True(t, found)

	row := (extent.Top + extent.Height/2 - opts.ProbeOffset) / page.scroller.rowHeight
	require.True(t, page.scroller.scrollToRow(row))

	page = settle(t, page, page.scrolled())
	require.Equal(t, nav.SectionSkills, page.Active())
}

func TestPageBannerKeepsActive(t *testing.T) {
	page := mountedPage(t, false)

	hero := page.layout.heroes[nav.SectionCertificates]
	require.True(t, page.scroller.scrollToRow(hero.Top+2))

	page = settle(t, page, page.scrolled())
	require.Equal(t, nav.SectionProfile, page.Active())
}

func TestPageUnmountDropsPending(t *testing.T) {
	page := mountedPage(t, false)

	require.True(t, page.scroller.scrollToRow(page.layout.rows[nav.SectionContact].Top))
	cmd := page.scrolled()

	page.unmount()
	page = settle(t, page, cmd)

	require.Equal(t, nav.SectionProfile, page.Active())
	require.Nil(t, page.scrolled())
}

func TestPageKeys(t *testing.T) {
	page := mountedPage(t, false)

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.Equal(t, nav.SectionProjects, page.Active())

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, nav.SectionCertificates, page.Active())

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, nav.SectionProjects, page.Active())

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.Equal(t, 0, page.scroller.viewport.YOffset)

	page, cmd := page.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, page.scroller.viewport.YOffset)
	require.NotNil(t, cmd)
}

func TestPageAcceptPressesBanner(t *testing.T) {
	page := mountedPage(t, false)

	hero := page.layout.heroes[nav.SectionSkills]
	require.True(t, page.scroller.scrollToRow(hero.Top))

	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, nav.SectionSkills, page.Active())
	require.Equal(t, page.layout.rows[nav.SectionSkills].Top-4, page.scroller.viewport.YOffset)
}

func TestPageSmoothScroll(t *testing.T) {
	page := mountedPage(t, true)

	cmd := page.navigate(nav.SectionContact)
	require.NotNil(t, cmd)
	require.Equal(t, nav.SectionContact, page.Active())
	require.Equal(t, 0, page.scroller.viewport.YOffset)

	target := page.layout.rows[nav.SectionContact].Top - 4
	for range 200 {
		if !page.scroller.animating {
			break
		}

		page, _ = page.Update(scrollFrameMsg{animation: page.scroller.animation})
	}

	require.False(t, page.scroller.animating)
	require.Equal(t, target, page.scroller.viewport.YOffset)
}

func TestPageStaleFrameIgnored(t *testing.T) {
	page := mountedPage(t, true)

	page.navigate(nav.SectionContact)
	stale := page.scroller.animation
	page.scroller.scrollBy(1)

	moved, next := page.scroller.step(stale)
	require.False(t, moved)
	require.Nil(t, next)
}

func TestScrollerClamp(t *testing.T) {
	port := newScroller(10, 5, 20, false)
	port.setContent(strings.Repeat("line\n", 19) + "line")

	port.ScrollTo(-100)
	require.Equal(t, 0, port.viewport.YOffset)

	port.ScrollTo(10_000)
	require.Equal(t, 15, port.viewport.YOffset)
	require.Equal(t, 300, port.Offset())

	require.False(t, port.scrollBy(5))
	require.True(t, port.scrollBy(-5))
	require.Equal(t, 200, port.Offset())
}
