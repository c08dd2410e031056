package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxNameLength matches the frontmatter schema limit.
const maxNameLength = 64

// ErrInvalidName is returned when a skill name is not a lowercase slug.
var ErrInvalidName = errors.New("invalid skill name")

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName checks that name uses only lowercase letters, digits and
// hyphens.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must be lowercase letters, digits or hyphens", ErrInvalidName, name)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w %q: longer than %d characters", ErrInvalidName, name, maxNameLength)
	}
	return nil
}

// TitleCase turns "my-cool-skill" into "My Cool Skill". Only the first rune
// of each segment changes; the rest is kept as written, so "2fa" stays "2fa".
func TitleCase(name string) string {
	if name == "" {
		return ""
	}
	upper := cases.Upper(language.Und)
	segments := strings.Split(name, "-")
	for i, s := range segments {
		_, size := utf8.DecodeRuneInString(s)
		segments[i] = upper.String(s[:size]) + s[size:]
	}
	return strings.Join(segments, " ")
}
