package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	GrayLight   = lipgloss.Color("#8a8a8a")
	White       = lipgloss.Color("#eeeeee")
	Whiter      = lipgloss.Color("#ffffff")

	Red           = lipgloss.Color("#B8383B")
	ColourGenuine = lipgloss.Color("#4d7455")
	ColourUnusual = lipgloss.Color("#8650ac")
	ColourVintage = lipgloss.Color("#476291")

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center).Background(Black)
	ContentContainerStyle = lipgloss.NewStyle()
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	NavContainer = lipgloss.NewStyle().Align(lipgloss.Center).Background(Black)
	NavInactive  = lipgloss.NewStyle().Foreground(GrayLight).Background(Black).PaddingLeft(2).PaddingRight(2)
	NavActive    = lipgloss.NewStyle().Bold(true).Foreground(Whiter).Background(GrayDark).
			Underline(true).PaddingLeft(2).PaddingRight(2)

	HeroTitle    = lipgloss.NewStyle().Bold(true).Foreground(Whiter).MarginBottom(1)
	HeroSubtitle = lipgloss.NewStyle().Foreground(GrayLight).Align(lipgloss.Center)
	HeroButton   = lipgloss.NewStyle().Foreground(Black).Background(White).Padding(0, 2).MarginTop(1)

	Section      = lipgloss.NewStyle().Padding(1, 2)
	SectionTitle = lipgloss.NewStyle().Bold(true).Foreground(Whiter).MarginBottom(1)
	Headline     = lipgloss.NewStyle().Foreground(GrayLight)
	Muted        = lipgloss.NewStyle().Foreground(GrayLight)
	Faint        = lipgloss.NewStyle().Foreground(Gray)
	Link         = lipgloss.NewStyle().Foreground(ColourVintage).Underline(true)

	Button        = lipgloss.NewStyle().Foreground(Black).Background(White).Padding(0, 1).MarginRight(1)
	ButtonOutline = lipgloss.NewStyle().Foreground(White).Border(lipgloss.NormalBorder()).BorderForeground(Gray).Padding(0, 1)

	Card      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(GrayDark).Padding(0, 1).MarginRight(1)
	CardTitle = lipgloss.NewStyle().Bold(true).Foreground(Whiter)

	Badge        = lipgloss.NewStyle().Foreground(White).Background(GrayDark).Padding(0, 1)
	BadgeOutline = lipgloss.NewStyle().Foreground(White).Padding(0, 1).Border(lipgloss.NormalBorder(), false, true).BorderForeground(Gray)

	Footer = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Center).MarginTop(2)

	StatusSection = lipgloss.NewStyle().Foreground(Whiter).Background(ColourUnusual).Bold(true).Padding(0, 1)
	StatusPercent = lipgloss.NewStyle().Foreground(GrayLight).Padding(0, 1)
	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGenuine).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).Padding(0, 1)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGenuine).Bold(true).Align(lipgloss.Center).Padding(0, 1)

	PalettePrompt = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	PaletteMatch  = lipgloss.NewStyle().Foreground(White)
	PaletteHint   = lipgloss.NewStyle().Foreground(GrayLight)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconEmail    = "✉"
	IconPhone    = "☎"
	IconLocation = "⌖"
	IconCert     = "🏅"
	IconImage    = "🖼"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}
