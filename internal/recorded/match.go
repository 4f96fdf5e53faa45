package recorded

import (
	"fmt"
	"regexp"

	"golang.org/x/text/width"
)

// FullWidth converts half-width characters (ASCII and half-width katakana)
// to their full-width forms.
func FullWidth(s string) string {
	return width.Widen.String(s)
}

// Matcher reports whether a path matches a title, ignoring case and
// character width.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles title into a case-insensitive alternation of the
// title and its full-width form. With raw set the title is used as a
// regular expression verbatim; otherwise it is matched literally.
func NewMatcher(title string, raw bool) (*Matcher, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	half, full := title, FullWidth(title)
	if !raw {
		half, full = regexp.QuoteMeta(half), regexp.QuoteMeta(full)
	}

	re, err := regexp.Compile("(?i)" + half + "|" + full)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, title, err)
	}
	return &Matcher{re: re}, nil
}

// Match reports whether path contains the title in either width.
func (m *Matcher) Match(path string) bool {
	return m.re.MatchString(path)
}

func (m *Matcher) String() string {
	return m.re.String()
}
