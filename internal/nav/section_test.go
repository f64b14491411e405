package nav_test

import (
	"testing"

	"github.com/fjanphilip/folio/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	for _, section := range nav.Sections() {
		parsed, err := nav.ParseSection(section.Key())
		require.NoError(t, err)
		require.Equal(t, section, parsed)
	}

	parsed, err := nav.ParseSection(" Projects ")
	require.NoError(t, err)
	require.Equal(t, nav.SectionProjects, parsed)

	_, err = nav.ParseSection("blog")
	require.ErrorIs(t, err, nav.ErrUnknownSection)
}

func TestSectionOrder(t *testing.T) {
	require.Equal(t, []string{"profile", "skills", "projects", "certificates", "contact"}, func() []string {
		var keys []string
		for _, section := range nav.Sections() {
			keys = append(keys, section.Key())
		}

		return keys
	}())
	require.Equal(t, "Certificates", nav.SectionCertificates.Label())
	require.Empty(t, nav.Section(-1).Label())
}

func TestSectionCycle(t *testing.T) {
	require.Equal(t, nav.SectionSkills, nav.SectionProfile.Next())
	require.Equal(t, nav.SectionProfile, nav.SectionContact.Next())
	require.Equal(t, nav.SectionContact, nav.SectionProfile.Prev())
	require.Equal(t, nav.SectionProjects, nav.SectionCertificates.Prev())
}
