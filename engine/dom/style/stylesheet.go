package style

import (
	"strings"

	"golang.org/x/net/html"
)

// Declaration is a single (property, value) pair of a rule.
type Declaration struct {
	Name      string
	Value     Value
	Important bool // parsed, but not used for the cascade
}

func (d Declaration) String() string {
	s := d.Name + ": " + d.Value.String()
	if d.Important {
		s += " !important"
	}
	return s
}

// Origin is the source a rule stems from. Rules of a later origin win
// over rules of an earlier one, regardless of specificity.
type Origin int8

// Origins in cascade order. The zero value is AuthorOrigin.
const (
	UserAgentOrigin Origin = iota - 1
	AuthorOrigin
	InlineOrigin
)

func (o Origin) String() string {
	switch o {
	case UserAgentOrigin:
		return "user-agent"
	case InlineOrigin:
		return "inline"
	}
	return "author"
}

// Rule is a list of selectors with a list of declarations.
// Rules are immutable once created.
type Rule struct {
	Selectors    []SimpleSelector
	Declarations []Declaration
	Origin       Origin
}

// NewRule creates a rule from a selector and declarations given as
// alternating property names and values.
//
//     style.NewRule(style.SimpleSelector{Classes: []string{"a"}},
//         "width", style.Px(200),
//         "margin-left", style.Auto())
//
func NewRule(sel SimpleSelector, decls ...interface{}) *Rule {
	r := &Rule{Selectors: []SimpleSelector{sel}}
	for i := 0; i+1 < len(decls); i += 2 {
		name, ok := decls[i].(string)
		v, vok := decls[i+1].(Value)
		if !ok || !vok {
			tracer().Errorf("illegal declaration pair at position %d", i)
			continue
		}
		r.Declarations = append(r.Declarations, Declaration{Name: name, Value: v})
	}
	return r
}

// Match returns the specificity of the most specific selector of r matching
// node, and false if no selector matches.
func (r *Rule) Match(node *html.Node) (Specificity, bool) {
	var best Specificity
	matched := false
	for _, sel := range r.Selectors {
		if sel.Matches(node) {
			if s := sel.Specificity(); !matched || best.Less(s) {
				best = s
			}
			matched = true
		}
	}
	return best, matched
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" { ")
	for _, d := range r.Declarations {
		b.WriteString(d.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// Stylesheet is an ordered list of rules. Source order breaks ties in the
// cascade.
type Stylesheet struct {
	Rules []*Rule
}

// NewStylesheet creates a stylesheet from rules in source order.
func NewStylesheet(rules ...*Rule) *Stylesheet {
	return &Stylesheet{Rules: rules}
}

// Append appends the rules of other to s, keeping source order.
func (s *Stylesheet) Append(other *Stylesheet) *Stylesheet {
	if other != nil {
		s.Rules = append(s.Rules, other.Rules...)
	}
	return s
}

// Size returns the number of rules in s.
func (s *Stylesheet) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}
