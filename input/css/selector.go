package css

import (
	"errors"
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/flowbox/engine/dom/style"
)

// ErrUnsupportedSelector is returned for valid selectors which are not simple
// selectors.
var ErrUnsupportedSelector = errors.New("selector is not a simple selector")

var simpleSelectorPattern = regexp.MustCompile(
	`^(\*|[a-zA-Z][a-zA-Z0-9-]*)?((?:[#.][a-zA-Z_-][a-zA-Z0-9_-]*)*)$`)

var selectorPart = regexp.MustCompile(`[#.][a-zA-Z_-][a-zA-Z0-9_-]*`)

// ParseSelector parses a simple selector, e.g. `div`, `*`, `#main`,
// `p.note.small`. Syntax errors are reported by cascadia.
func ParseSelector(s string) (style.SimpleSelector, error) {
	s = strings.TrimSpace(s)
	if _, err := cascadia.Compile(s); err != nil {
		return style.SimpleSelector{}, err
	}
	m := simpleSelectorPattern.FindStringSubmatch(s)
	if m == nil {
		return style.SimpleSelector{}, ErrUnsupportedSelector
	}
	sel := style.SimpleSelector{Tag: fold.String(m[1])}
	for _, part := range selectorPart.FindAllString(m[2], -1) {
		switch part[0] {
		case '#':
			if sel.ID != "" && sel.ID != part[1:] {
				return style.SimpleSelector{}, ErrUnsupportedSelector
			}
			sel.ID = part[1:]
		case '.':
			sel.Classes = append(sel.Classes, part[1:])
		}
	}
	return sel, nil
}
