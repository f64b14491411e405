// Package portfolio defines the content shown on the page and how it is loaded from disk.
package portfolio

import (
	"github.com/fjanphilip/folio/internal/nav"
)

type Portfolio struct {
	Meta         Meta          `yaml:"meta"`
	Profile      Profile       `yaml:"profile"`
	SkillGroups  []SkillGroup  `yaml:"skills" validate:"dive"`
	Projects     []Project     `yaml:"projects" validate:"dive"`
	Certificates []Certificate `yaml:"certificates" validate:"dive"`
	Contact      Contact       `yaml:"contact"`
	// Heroes are the full height banners shown above each section, keyed by section key.
	Heroes map[string]Hero `yaml:"heroes"`
}

type Meta struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Owner       string `yaml:"owner" validate:"required"`
	Year        int    `yaml:"year" validate:"omitempty,min=1970,max=2200"`
}

type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Headline string `yaml:"headline"`
	// Bio is rendered as markdown.
	Bio       string `yaml:"bio" validate:"required"`
	Email     string `yaml:"email" validate:"omitempty,email"`
	GitHubURL string `yaml:"github_url" validate:"omitempty,url"`
	Photo     string `yaml:"photo"`
}

type SkillGroup struct {
	Title  string   `yaml:"title" validate:"required"`
	Badges []string `yaml:"badges" validate:"min=1,dive,required"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
	CodeURL     string   `yaml:"code_url" validate:"omitempty,url"`
	DemoURL     string   `yaml:"demo_url" validate:"omitempty,url"`
}

type Certificate struct {
	Title  string `yaml:"title" validate:"required"`
	Issuer string `yaml:"issuer" validate:"required"`
	Year   int    `yaml:"year" validate:"min=1970,max=2200"`
	Image  string `yaml:"image"`
}

type Contact struct {
	Heading  string `yaml:"heading" validate:"required"`
	Blurb    string `yaml:"blurb"`
	Email    string `yaml:"email" validate:"required,email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Button   string `yaml:"button"`
}

// Hero returns the banner for section, falling back to the section label when none is defined.
func (p Portfolio) Hero(section nav.Section) Hero {
	hero := p.Heroes[section.Key()]
	if hero.Title == "" {
		hero.Title = section.Label()
	}

	if hero.Button == "" {
		hero.Button = "View " + section.Label()
	}

	return hero
}

// Entry is a searchable piece of content and the section it lives in.
type Entry struct {
	Text    string
	Section nav.Section
}

// SearchEntries lists everything a user might look for, each tied to the section showing it.
func (p Portfolio) SearchEntries() []Entry {
	var entries []Entry
	for _, section := range nav.Sections() {
		entries = append(entries, Entry{Text: section.Label(), Section: section})
	}

	entries = append(entries,
		Entry{Text: p.Profile.Name, Section: nav.SectionProfile},
		Entry{Text: p.Profile.Headline, Section: nav.SectionProfile})

	for _, group := range p.SkillGroups {
		entries = append(entries, Entry{Text: group.Title, Section: nav.SectionSkills})
		for _, badge := range group.Badges {
			entries = append(entries, Entry{Text: badge, Section: nav.SectionSkills})
		}
	}

	for _, project := range p.Projects {
		entries = append(entries, Entry{Text: project.Title, Section: nav.SectionProjects})
		for _, tag := range project.Tags {
			entries = append(entries, Entry{Text: tag, Section: nav.SectionProjects})
		}
	}

	for _, cert := range p.Certificates {
		entries = append(entries,
			Entry{Text: cert.Title, Section: nav.SectionCertificates},
			Entry{Text: cert.Issuer, Section: nav.SectionCertificates})
	}

	entries = append(entries,
		Entry{Text: p.Contact.Email, Section: nav.SectionContact},
		Entry{Text: p.Contact.Phone, Section: nav.SectionContact},
		Entry{Text: p.Contact.Location, Section: nav.SectionContact})

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.Text != "" {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
