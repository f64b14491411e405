package portfolio

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fjanphilip/folio/internal/nav"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed default.yaml
	defaultContent []byte

	ErrRead    = errors.New("failed to read portfolio")
	ErrInvalid = errors.New("invalid portfolio")

	validate = validator.New()
)

// Default returns the built in portfolio content.
func Default() Portfolio {
	content, err := Parse(defaultContent)
	if err != nil {
		panic(err)
	}

	return content
}

// Load reads and validates the portfolio at path. An empty path returns the built in content.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default(), nil
	}

	body, errRead := os.ReadFile(path)
	if errRead != nil {
		return Portfolio{}, errors.Join(errRead, ErrRead)
	}

	return Parse(body)
}

// Parse decodes and validates a yaml document.
func Parse(body []byte) (Portfolio, error) {
	var content Portfolio

	decoder := yaml.NewDecoder(bytes.NewReader(body))
	decoder.KnownFields(true)

	if err := decoder.Decode(&content); err != nil {
		return Portfolio{}, errors.Join(err, ErrRead)
	}

	if err := Validate(content); err != nil {
		return Portfolio{}, err
	}

	return content, nil
}

// Validate checks the content for missing or malformed fields. The returned error lists every
// problem found.
func Validate(content Portfolio) error {
	var problems []string

	if err := validate.Struct(content); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Join(err, ErrInvalid)
		}

		for _, fieldErr := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s: failed %q", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}

	problems = append(problems, heroKeyProblems(content.Heroes)...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// heroKeyProblems reports banner keys that don't exactly name a section, sorted for stable output.
func heroKeyProblems(heroes map[string]Hero) []string {
	keys := slices.Sorted(maps.Keys(heroes))

	var problems []string
	for _, key := range keys {
		section, err := nav.ParseSection(key)
		if err != nil || section.Key() != key {
			problems = append(problems, fmt.Sprintf("Portfolio.Heroes[%s]: unknown section", key))
		}
	}

	return problems
}

// Scaffold builds a minimal document for a new portfolio, suitable for editing by hand.
func Scaffold(name string, headline string, email string, githubURL string) ([]byte, error) {
	content := Portfolio{
		Meta: Meta{
			Title: name + " Portfolio",
			Owner: name,
		},
		Profile: Profile{
			Name:      name,
			Headline:  headline,
			Bio:       "Tell people about yourself. **Markdown** is supported.",
			Email:     email,
			GitHubURL: githubURL,
		},
		SkillGroups: []SkillGroup{{Title: "Languages", Badges: []string{"Go"}}},
		Contact: Contact{
			Heading: "Let's Work Together",
			Email:   email,
		},
	}

	if err := Validate(content); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(content); err != nil {
		return nil, errors.Join(err, ErrInvalid)
	}

	if err := encoder.Close(); err != nil {
		return nil, errors.Join(err, ErrInvalid)
	}

	return buf.Bytes(), nil
}
