package nav

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

// Section identifies one of the fixed, vertically stacked regions of the page. The zero value is
// the first section, so an uninitialized Section is still a member of the set.
type Section int

const (
	SectionProfile Section = iota
	SectionSkills
	SectionProjects
	SectionCertificates
	SectionContact
)

var (
	sectionKeys   = [...]string{"profile", "skills", "projects", "certificates", "contact"}
	sectionLabels = [...]string{"Profile", "Skills", "Projects", "Certificates", "Contact"}
)

// Sections returns every section in top-to-bottom order, which is also the navigation order.
func Sections() []Section {
	return []Section{SectionProfile, SectionSkills, SectionProjects, SectionCertificates, SectionContact}
}

// ParseSection resolves a stable key such as "projects" into its Section.
func ParseSection(key string) (Section, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for idx, known := range sectionKeys {
		if known == key {
			return Section(idx), nil
		}
	}

	return SectionProfile, fmt.Errorf("%w: %q", ErrUnknownSection, key)
}

func (s Section) Valid() bool {
	return s >= SectionProfile && s <= SectionContact
}

// Key is the stable identifier used in content files and on the command line.
func (s Section) Key() string {
	if !s.Valid() {
		return ""
	}

	return sectionKeys[s]
}

func (s Section) Label() string {
	if !s.Valid() {
		return ""
	}

	return sectionLabels[s]
}

func (s Section) String() string {
	return s.Key()
}

// Next returns the following section, wrapping around to the first.
func (s Section) Next() Section {
	if s >= SectionContact {
		return SectionProfile
	}

	return s + 1
}

// Prev returns the preceding section, wrapping around to the last.
func (s Section) Prev() Section {
	if s <= SectionProfile {
		return SectionContact
	}

	return s - 1
}
