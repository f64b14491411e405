package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fjanphilip/folio/internal/nav"
	"github.com/fjanphilip/folio/internal/portfolio"
	"github.com/fjanphilip/folio/internal/ui/styles"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	minCardWidth = 24
	maxCardWidth = 40
)

// renderer turns the portfolio into the page body. Each section is preceded by a banner at least
// one viewport tall, and the last section is stretched to fill the viewport so navigating to it
// can bring it fully into view.
type renderer struct {
	content       portfolio.Portfolio
	markdownStyle string
	width         int
	height        int
	now           func() time.Time
	mark          func(id string, value string) string
	heroZone      func(section nav.Section) string

	markdown      *glamour.TermRenderer
	markdownWidth int
}

func newRenderer(content portfolio.Portfolio, markdownStyle string) *renderer {
	if markdownStyle == "" {
		markdownStyle = "dark"
	}

	return &renderer{
		content:       content,
		markdownStyle: markdownStyle,
		now:           time.Now,
		mark:          func(_ string, value string) string { return value },
		heroZone:      func(section nav.Section) string { return section.Key() },
	}
}

// render draws the whole page at the current size, recording every extent into layout.
func (r *renderer) render(layout *pageLayout) string {
	layout.reset()

	var (
		blocks []string
		row    int
	)

	for _, section := range nav.Sections() {
		hero := r.hero(section)
		heroHeight := lipgloss.Height(hero)
		layout.heroes[section] = nav.Extent{Top: row, Height: heroHeight}
		row += heroHeight

		body := r.section(section)
		if section == nav.SectionContact {
			body = lipgloss.NewStyle().Height(r.height).Render(body)
		}

		bodyHeight := lipgloss.Height(body)
		layout.rows[section] = nav.Extent{Top: row, Height: bodyHeight}
		row += bodyHeight

		blocks = append(blocks, hero, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *renderer) innerWidth() int {
	return max(10, r.width-styles.Section.GetHorizontalFrameSize())
}

func (r *renderer) hero(section nav.Section) string {
	hero := r.content.Hero(section)
	textWidth := min(max(10, r.width-8), 72)

	inner := lipgloss.JoinVertical(lipgloss.Center,
		styles.HeroTitle.Render(strings.ToUpper(hero.Title)),
		styles.HeroSubtitle.Width(textWidth).Render(wordwrap.String(hero.Subtitle, textWidth)),
		r.mark(r.heroZone(section), styles.HeroButton.Render(hero.Button)))

	return lipgloss.Place(r.width, max(r.height, lipgloss.Height(inner)), lipgloss.Center, lipgloss.Center, inner)
}

func (r *renderer) section(section nav.Section) string {
	var body string

	switch section {
	case nav.SectionProfile:
		body = r.profile()
	case nav.SectionSkills:
		body = r.skills()
	case nav.SectionProjects:
		body = r.projects()
	case nav.SectionCertificates:
		body = r.certificates()
	case nav.SectionContact:
		body = r.contact()
	}

	return styles.Section.Width(r.width).Render(body)
}

func (r *renderer) profile() string {
	profile := r.content.Profile
	width := r.innerWidth()

	var buttons []string
	if profile.Email != "" {
		buttons = append(buttons, styles.Button.Render("Get In Touch"))
	}

	if profile.GitHubURL != "" {
		buttons = append(buttons, styles.ButtonOutline.Render("View GitHub"))
	}

	rows := []string{
		styles.SectionTitle.Render(fmt.Sprintf("Hi, I'm %s", profile.Name)),
		styles.Headline.Render(profile.Headline),
		r.markdownText(profile.Bio, width),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	}

	var links []string
	if profile.Email != "" {
		links = append(links, styles.Link.Render("mailto:"+profile.Email))
	}

	if profile.GitHubURL != "" {
		links = append(links, styles.Link.Render(profile.GitHubURL))
	}

	if len(links) > 0 {
		rows = append(rows, strings.Join(links, "  "))
	}

	if profile.Photo != "" {
		rows = append(rows, styles.Faint.Render(styles.IconImage+" "+profile.Photo))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// markdownText renders markdown with glamour, falling back to plain wrapped text.
func (r *renderer) markdownText(source string, width int) string {
	if r.markdown == nil || r.markdownWidth != width {
		termRenderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.markdownStyle),
			glamour.WithWordWrap(width))
		if err != nil {
			slog.Error("Failed to create markdown renderer", slog.String("error", err.Error()))

			return wordwrap.String(source, width)
		}

		r.markdown = termRenderer
		r.markdownWidth = width
	}

	out, err := r.markdown.Render(source)
	if err != nil {
		slog.Error("Failed to render markdown", slog.String("error", err.Error()))

		return wordwrap.String(source, width)
	}

	return strings.Trim(out, "\n")
}

func (r *renderer) cardWidth() int {
	return min(max(minCardWidth, r.innerWidth()/3-2), maxCardWidth, r.innerWidth())
}

func (r *renderer) skills() string {
	cardWidth := r.cardWidth()
	textWidth := cardWidth - styles.Card.GetHorizontalFrameSize()

	cards := make([]string, len(r.content.SkillGroups))
	for idx, group := range r.content.SkillGroups {
		badges := make([]string, len(group.Badges))
		for badgeIdx, badge := range group.Badges {
			badges[badgeIdx] = styles.Badge.Render(runewidth.Truncate(badge, textWidth-2, "…"))
		}

		cards[idx] = styles.Card.Width(textWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
			styles.CardTitle.Render(group.Title),
			"",
			flow(badges, textWidth)))
	}

	return grid(cards, r.innerWidth())
}

func (r *renderer) projects() string {
	cardWidth := r.cardWidth()
	textWidth := cardWidth - styles.Card.GetHorizontalFrameSize()

	cards := make([]string, len(r.content.Projects))
	for idx, project := range r.content.Projects {
		tags := make([]string, len(project.Tags))
		for tagIdx, tag := range project.Tags {
			tags[tagIdx] = styles.BadgeOutline.Render(runewidth.Truncate(tag, textWidth-4, "…"))
		}

		rows := []string{styles.CardTitle.Render(wordwrap.String(project.Title, textWidth))}
		if project.Image != "" {
			rows = append(rows, styles.Faint.Render(runewidth.Truncate(styles.IconImage+" "+project.Image, textWidth, "…")))
		}

		rows = append(rows,
			styles.Muted.Render(wordwrap.String(project.Description, textWidth)),
			"",
			flow(tags, textWidth))

		var buttons, links []string
		if project.CodeURL != "" {
			buttons = append(buttons, styles.Button.Render("Code"))
			links = append(links, styles.Link.Render(runewidth.Truncate(project.CodeURL, textWidth, "…")))
		}

		if project.DemoURL != "" {
			buttons = append(buttons, styles.Button.Render("Demo"))
			links = append(links, styles.Link.Render(runewidth.Truncate(project.DemoURL, textWidth, "…")))
		}

		if len(buttons) > 0 {
			rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
			rows = append(rows, links...)
		}

		cards[idx] = styles.Card.Width(textWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	return grid(cards, r.innerWidth())
}

func (r *renderer) certificates() string {
	cardWidth := r.cardWidth()
	textWidth := cardWidth - styles.Card.GetHorizontalFrameSize()
	now := r.now()

	cards := make([]string, len(r.content.Certificates))
	for idx, cert := range r.content.Certificates {
		issued := time.Date(cert.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		age := humanize.RelTime(issued, now, "ago", "from now")

		rows := []string{
			styles.CardTitle.Render(wordwrap.String(styles.IconCert+" "+cert.Title, textWidth)),
			styles.Muted.Render(wordwrap.String("Certified by "+cert.Issuer, textWidth)),
			styles.Faint.Render(fmt.Sprintf("%d · %s", cert.Year, age)),
		}

		if cert.Image != "" {
			rows = append(rows, styles.Faint.Render(runewidth.Truncate(styles.IconImage+" "+cert.Image, textWidth, "…")))
		}

		cards[idx] = styles.Card.Width(textWidth).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
	}

	return grid(cards, r.innerWidth())
}

func (r *renderer) contact() string {
	contact := r.content.Contact
	width := r.innerWidth()

	rows := []string{
		styles.SectionTitle.Render(contact.Heading),
		styles.Muted.Render(wordwrap.String(contact.Blurb, min(width, 80))),
		"",
	}

	for _, line := range []struct {
		icon  string
		value string
	}{
		{styles.IconEmail, contact.Email},
		{styles.IconPhone, contact.Phone},
		{styles.IconLocation, contact.Location},
	} {
		if line.value != "" {
			rows = append(rows, line.icon+"  "+line.value)
		}
	}

	year := r.content.Meta.Year
	if year == 0 {
		year = r.now().Year()
	}

	rows = append(rows, styles.Footer.Width(width).Render(
		fmt.Sprintf("© %d %s. All rights reserved.", year, r.content.Meta.Owner)))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// flow lays items out left to right, wrapping onto a new line when width is exceeded.
func flow(items []string, width int) string {
	var (
		lines   []string
		current []string
		used    int
	)

	for _, item := range items {
		itemWidth := lipgloss.Width(item) + 1
		if used > 0 && used+itemWidth > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			used = 0
		}

		current = append(current, item, " ")
		used += itemWidth
	}

	if len(current) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// grid packs cards into as many columns as fit in width.
func grid(cards []string, width int) string {
	var (
		rows    []string
		current []string
		used    int
	)

	for _, card := range cards {
		cardWidth := lipgloss.Width(card)
		if used > 0 && used+cardWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			used = 0
		}

		current = append(current, card)
		used += cardWidth
	}

	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
