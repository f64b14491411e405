package ui

import "github.com/fjanphilip/folio/internal/nav"

// pageLayout records where each section was last rendered. It implements nav.Layout, scaling
// rows into layout units.
type pageLayout struct {
	rowHeight int
	rows      map[nav.Section]nav.Extent
	heroes    map[nav.Section]nav.Extent
}

func newPageLayout(rowHeight int) *pageLayout {
	return &pageLayout{
		rowHeight: max(1, rowHeight),
		rows:      map[nav.Section]nav.Extent{},
		heroes:    map[nav.Section]nav.Extent{},
	}
}

func (l *pageLayout) Extent(section nav.Section) (nav.Extent, bool) {
	extent, found := l.rows[section]
	if !found {
		return nav.Extent{}, false
	}

	return nav.Extent{Top: extent.Top * l.rowHeight, Height: extent.Height * l.rowHeight}, true
}

// heroAt returns the section whose banner covers row.
func (l *pageLayout) heroAt(row int) (nav.Section, bool) {
	for _, section := range nav.Sections() {
		extent, found := l.heroes[section]
		if found && extent.Contains(row) {
			return section, true
		}
	}

	return nav.SectionProfile, false
}

func (l *pageLayout) reset() {
	clear(l.rows)
	clear(l.heroes)
}
