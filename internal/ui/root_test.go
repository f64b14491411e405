package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui/input"
	"github.com/stretchr/testify/require"
)

func sizedRoot(t *testing.T) rootModel {
	t.Helper()

	root := newRootModel(testConfig(false), portfolio.Default(), BuildInfo{Version: "v1.0.0"}, "/tmp/folio.yaml")
	model, _ := root.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight + 2})

	return model.(rootModel)
}

func update(t *testing.T, root rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()

	model, cmd := root.Update(msg)
	next, ok := model.(rootModel)
	require.True(t, ok)

	return next, cmd
}

func TestRootIgnoresInputBeforeSize(t *testing.T) {
	root := newRootModel(testConfig(false), portfolio.Default(), BuildInfo{}, "")

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	require.Equal(t, nav.SectionProfile, root.page.Active())
	require.False(t, root.page.mounted())
	require.Empty(t, root.View())
}

func TestRootNavigate(t *testing.T) {
	root := sizedRoot(t)
	require.True(t, root.page.mounted())
	require.Equal(t, testHeight, root.page.height)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	require.Equal(t, nav.SectionContact, root.page.Active())

	root, _ = update(t, root, navigateMsg{section: nav.SectionSkills})
	require.Equal(t, nav.SectionSkills, root.page.Active())
	require.Contains(t, root.View(), "Skills")
}

func TestRootReloadKeepsPosition(t *testing.T) {
	root := sizedRoot(t)

	root, _ = update(t, root, navigateMsg{section: nav.SectionCertificates})
	row := root.page.scroller.viewport.YOffset
	previous := root.page

	root, cmd := update(t, root, portfolio.Default())
	require.NotNil(t, cmd)
	require.False(t, previous.mounted())
	require.True(t, root.page.mounted())
	require.Equal(t, row, root.page.scroller.viewport.YOffset)
	require.True(t, root.page.navigator.Pending())

	root, _ = update(t, root, testConfig(true))
	require.True(t, root.page.scroller.smooth)
	require.Equal(t, row, root.page.scroller.viewport.YOffset)
}

func TestRootReloadBeforeSize(t *testing.T) {
	root := newRootModel(testConfig(false), portfolio.Default(), BuildInfo{}, "")

	content := portfolio.Default()
	content.Meta.Title = "Renamed"

	root, _ = update(t, root, content)
	require.Equal(t, "Renamed", root.navbar.title)
	require.False(t, root.page.mounted())
}

func TestRootQuitUnmounts(t *testing.T) {
	root := sizedRoot(t)
	page := root.page

	_, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, page.mounted())
}

func TestRootForceQuitFromGoto(t *testing.T) {
	root := sizedRoot(t)
	page := root.page

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.Equal(t, viewGoto, root.currentView)

	// A plain q is a search character while the palette has focus.
	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Equal(t, viewGoto, root.currentView)
	require.Equal(t, "q", root.gotoModel.input.Value())

	_, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, page.mounted())
}

func TestRootHelpKeys(t *testing.T) {
	root := sizedRoot(t)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	require.Equal(t, viewHelp, root.currentView)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	require.Equal(t, viewPage, root.currentView)
	require.Equal(t, "h", input.Default.Help.Help().Key)
}

func TestRootHelpToggle(t *testing.T) {
	root := sizedRoot(t)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, viewHelp, root.currentView)
	require.Contains(t, root.View(), "Config Path")

	// Page keys are inert while help is showing.
	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	require.Equal(t, nav.SectionProfile, root.page.Active())

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewPage, root.currentView)
}

func TestRootGoto(t *testing.T) {
	root := sizedRoot(t)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.Equal(t, viewGoto, root.currentView)

	// Digits are typed into the palette, not treated as navigation.
	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.Equal(t, nav.SectionProfile, root.page.Active())
	require.Equal(t, "2", root.gotoModel.input.Value())

	root, _ = update(t, root, closeGoto()())
	require.Equal(t, viewPage, root.currentView)
}

func TestRootStatusMessages(t *testing.T) {
	root := sizedRoot(t)

	root, cmd := update(t, root, ContentErrorMsg{Err: errors.New("bad yaml")})
	require.NotNil(t, cmd)

	root, _ = update(t, root, cmd())
	require.Equal(t, "bad yaml", root.statusModel.statusMsg)
	require.True(t, root.statusModel.statusError)

	root, _ = update(t, root, clearStatusMessageMsg{seq: root.statusModel.statusSeq})
	require.Empty(t, root.statusModel.statusMsg)
}

func TestRootStatusClearKeepsNewerMessage(t *testing.T) {
	root := sizedRoot(t)

	root, _ = update(t, root, statusMsg{Message: "first", Err: true})
	firstSeq := root.statusModel.statusSeq

	root, cmd := update(t, root, statusMsg{Message: "Copied email to clipboard"})
	require.NotNil(t, cmd)

	// The timer scheduled for the first message fires after the second arrived.
	root, _ = update(t, root, clearStatusMessageMsg{seq: firstSeq})
	require.Equal(t, "Copied email to clipboard", root.statusModel.statusMsg)
	require.False(t, root.statusModel.statusError)

	root, _ = update(t, root, clearStatusMessageMsg{seq: root.statusModel.statusSeq})
	require.Empty(t, root.statusModel.statusMsg)
}

func TestCopyEmailWithoutAddress(t *testing.T) {
	msg := copyEmail("")()

	status, ok := msg.(statusMsg)
	require.True(t, ok)
	require.True(t, status.Err)
}
