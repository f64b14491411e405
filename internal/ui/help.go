package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/fjanphilip/folio/internal/ui/input"
	"github.com/fjanphilip/folio/internal/ui/styles"
)

// BuildInfo describes the running binary for the help page and status bar.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func newHelpModel(build BuildInfo, configPath string, contentPath string) helpModel {
	if contentPath == "" {
		contentPath = "(built-in)"
	}

	return helpModel{
		helpView:    help.New(),
		build:       build,
		configPath:  configPath,
		contentPath: contentPath,
	}
}

type helpModel struct {
	helpView    help.Model
	build       BuildInfo
	configPath  string
	contentPath string
	width       int
	height      int
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Profile,
			input.Default.Skills,
			input.Default.Projects,
			input.Default.Certificates,
			input.Default.Contact,
			input.Default.NextSection,
			input.Default.PrevSection,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Top,
			input.Default.Bottom,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Accept,
			input.Default.Goto,
			input.Default.Copy,
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Content Path", m.contentPath),
	)

	return lipgloss.Place(max(m.width, lipgloss.Width(content)), max(m.height, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
