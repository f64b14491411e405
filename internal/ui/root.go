package ui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/config"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui/input"
	"github.com/fjanphilip/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type contentView int

const (
	viewPage contentView = iota
	viewHelp
	viewGoto
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	conf         config.Config
	content      portfolio.Portfolio
	currentView  contentView
	zonePrefix   string
	height       int
	width        int
	headerHeight int
	footerHeight int
	page         pageModel
	navbar       navbarModel
	statusModel  statusBarModel
	helpModel    helpModel
	gotoModel    gotoModel
}

func newRootModel(conf config.Config, content portfolio.Portfolio, build BuildInfo, configPath string) rootModel {
	prefix := zone.NewPrefix()

	return rootModel{
		conf:         conf,
		content:      content,
		currentView:  viewPage,
		zonePrefix:   prefix,
		headerHeight: 1,
		footerHeight: 1,
		page:         newPageModel(content, conf, prefix),
		navbar:       newNavbarModel(content.Meta.Title, prefix),
		statusModel:  newStatusBarModel(build.Version, conf.ContentPath),
		helpModel:    newHelpModel(build, configPath, conf.ContentPath),
		gotoModel:    newGotoModel(content.SearchEntries()),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.SetWindowTitle(m.content.Meta.Title)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	// Reloads arriving before the first size are applied so the initial render uses them.
	switch msg := inMsg.(type) {
	case config.Config:
		m.conf = msg
		m.statusModel.contentPath = msg.ContentPath
		m.helpModel = newHelpModel(m.helpModel.build, m.helpModel.configPath, msg.ContentPath)

		return m.rebuild(setStatusMessage("Config reloaded", false))
	case portfolio.Portfolio:
		m.content = msg
		m.navbar.title = msg.Meta.Title
		m.gotoModel = newGotoModel(msg.SearchEntries())
		m.gotoModel.width = m.width

		return m.rebuild(tea.SetWindowTitle(msg.Meta.Title), setStatusMessage("Content reloaded", false))
	}

	if !m.isInitialized() {
		if _, ok := inMsg.(tea.WindowSizeMsg); !ok {
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.helpModel.width = m.width
		m.helpModel.height = m.contentHeight()

		cmds := make([]tea.Cmd, 4)

		m.page, cmds[0] = m.page.resize(m.width, m.contentHeight())
		m.navbar, cmds[1] = m.navbar.Update(msg)
		m.statusModel, cmds[2] = m.statusModel.Update(msg)
		m.gotoModel, cmds[3] = m.gotoModel.Update(msg)

		return m, tea.Batch(cmds...)
	case ContentErrorMsg:
		return m, setStatusMessage(msg.Err.Error(), true)
	case statusMsg, clearStatusMessageMsg:
		var cmd tea.Cmd
		m.statusModel, cmd = m.statusModel.Update(msg)

		return m, cmd
	case gotoClosedMsg:
		m.currentView = viewPage

		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.currentView != viewPage {
			return m, nil
		}

		var navCmd, pageCmd tea.Cmd
		m.navbar, navCmd = m.navbar.Update(msg)
		m.page, pageCmd = m.page.Update(msg)

		return m, tea.Batch(navCmd, pageCmd)
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(inMsg)

	return m, cmd
}

func (m rootModel) updateKey(msg tea.KeyMsg) (rootModel, tea.Cmd) {
	if key.Matches(msg, input.Default.ForceQuit) {
		m.page.unmount()

		return m, tea.Quit
	}

	if m.currentView == viewGoto {
		var cmd tea.Cmd
		m.gotoModel, cmd = m.gotoModel.Update(msg)

		return m, cmd
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		m.page.unmount()

		return m, tea.Quit
	case key.Matches(msg, input.Default.Help):
		if m.currentView == viewHelp {
			m.currentView = viewPage
		} else {
			m.currentView = viewHelp
		}

		return m, nil
	case key.Matches(msg, input.Default.Back):
		m.currentView = viewPage

		return m, nil
	}

	if m.currentView != viewPage {
		return m, nil
	}

	switch {
	case key.Matches(msg, input.Default.Goto):
		m.currentView = viewGoto

		var cmd tea.Cmd
		m.gotoModel, cmd = m.gotoModel.open()

		return m, cmd
	case key.Matches(msg, input.Default.Copy):
		return m, copyEmail(m.content.Contact.Email)
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)

	return m, cmd
}

// rebuild replaces the page after a config or content change. The old page is unmounted so its
// pending recomputation is discarded, and the new one resumes at the same row.
func (m rootModel) rebuild(cmds ...tea.Cmd) (rootModel, tea.Cmd) {
	row := m.page.scroller.viewport.YOffset
	m.page.unmount()
	m.page = newPageModel(m.content, m.conf, m.zonePrefix)

	if !m.isInitialized() {
		return m, tea.Batch(cmds...)
	}

	var resizeCmd tea.Cmd
	m.page, resizeCmd = m.page.resize(m.width, m.contentHeight())

	return m, tea.Batch(append(cmds, resizeCmd, m.page.restore(row))...)
}

func copyEmail(email string) tea.Cmd {
	return func() tea.Msg {
		if email == "" {
			return statusMsg{Message: "No email address to copy", Err: true}
		}

		if err := clipboard.WriteAll(email); err != nil {
			slog.Error("Failed to copy email", slog.String("error", err.Error()))

			return statusMsg{Message: "Clipboard unavailable", Err: true}
		}

		return statusMsg{Message: fmt.Sprintf("Copied %s", email)}
	}
}

func (m rootModel) contentHeight() int {
	return max(1, m.height-m.headerHeight-m.footerHeight)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	hdr := styles.HeaderContainerStyle.Width(m.width).Render(m.navbar.View(m.page.Active()))
	ftr := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View(m.page.Active(), m.page.scrollPercent()))

	var content string

	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewGoto:
		content = lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.gotoModel.View())
	default:
		content = m.page.View()
	}

	ctr := styles.ContentContainerStyle.Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case scrollFrameMsg, settleMsg, tea.MouseMsg:
		break
	case tea.KeyMsg:
		slog.Debug("tea.KeyMsg", slog.String("key", msg.String()))
	default:
		slog.Debug("tea.Msg", slog.String("type", fmt.Sprintf("%T", inMsg)))
	}
}
