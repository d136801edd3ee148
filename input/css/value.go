package css

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"golang.org/x/image/colornames"
)

// ErrValueFormat is returned for property values which cannot be interpreted.
var ErrValueFormat = errors.New("illegal value format")

var keywordPattern = regexp.MustCompile(`^-?[a-z_][a-z0-9_-]*$`)

// ParseValues splits a property value at whitespace and parses each
// component. Functional notation like `rgb(0, 0, 0)` is kept as one
// component.
func ParseValues(property, s string) ([]style.Value, error) {
	comps := splitComponents(s)
	if len(comps) == 0 {
		return nil, fmt.Errorf("%w: empty value for %s", ErrValueFormat, property)
	}
	values := make([]style.Value, 0, len(comps))
	for _, c := range comps {
		v, err := ParseValue(c)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseValue parses a single value component. Recognized are `auto`,
// lengths (`12px`, `1.5cm`, `0`), percentages, colors (names, `#rgb`,
// `#rrggbb`, `rgb()`, `hsl()`) and keywords.
func ParseValue(s string) (style.Value, error) {
	s = strings.TrimSpace(s)
	low := fold.String(s)
	if low == "auto" {
		return style.Auto(), nil
	}
	if d, pcnt, err := dimen.ParseDimen(low); err == nil {
		if pcnt {
			return style.Percent(float64(d)), nil
		}
		return style.Length(d), nil
	}
	if c, ok := parseColor(low); ok {
		return style.ColorOf(c), nil
	}
	if keywordPattern.MatchString(low) {
		return style.Keyword(low), nil
	}
	return style.NullValue, fmt.Errorf("%w: %q", ErrValueFormat, s)
}

func parseColor(s string) (style.Color, bool) {
	if c, ok := colornames.Map[s]; ok {
		return style.Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	if !strings.HasPrefix(s, "#") && !strings.HasSuffix(s, ")") && s != "transparent" {
		return style.Color{}, false
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		tracer().Debugf("not a color: %q", s)
		return style.Color{}, false
	}
	r, g, b, a := c.RGBA255()
	return style.Color{R: r, G: g, B: b, A: a}, true
}

// splitComponents splits at whitespace outside of parentheses.
func splitComponents(s string) []string {
	var comps []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			comps = append(comps, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'):
			flush()
			continue
		}
		b.WriteRune(r)
	}
	flush()
	return comps
}
