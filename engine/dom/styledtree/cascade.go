package styledtree

import (
	"sort"
	"strings"

	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"golang.org/x/net/html"
)

// DeclarationParser reads the declarations of a `style` attribute.
type DeclarationParser func(text string) ([]style.Declaration, error)

// Option configures BuildStyleTree.
type Option func(*builder)

// WithInlineStyles lets BuildStyleTree apply the `style` attribute of
// elements, read by parse. Inline declarations win over all stylesheet
// rules. Without this option, `style` attributes are ignored.
func WithInlineStyles(parse DeclarationParser) Option {
	return func(b *builder) {
		b.inline = parse
	}
}

type builder struct {
	sheet  *style.Stylesheet
	inline DeclarationParser
}

// BuildStyleTree creates a styled tree for a DOM tree and a stylesheet.
// A nil stylesheet is treated as empty. BuildStyleTree returns nil for a
// nil root.
func BuildStyleTree(root *html.Node, sheet *style.Stylesheet, opts ...Option) *StyNode {
	if root == nil {
		return nil
	}
	b := &builder{sheet: sheet}
	for _, opt := range opts {
		opt(b)
	}
	tracer().Debugf("building styled tree for %s with %d rules", dom.NodeName(root), sheet.Size())
	return b.styleNode(root)
}

func (b *builder) styleNode(h *html.Node) *StyNode {
	var styles *style.PropertyMap
	if h.Type == html.ElementNode {
		rules := MatchingRules(h, b.sheet)
		if r := b.inlineRule(h); r != nil {
			rules = append(rules, MatchedRule{Rule: r})
		}
		styles = cascade(h, rules)
	}
	sn := NewNodeForHTMLNode(h, styles)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		sn.AddChild(b.styleNode(ch))
	}
	return sn
}

// inlineRule wraps the declarations of h's `style` attribute into a rule
// of InlineOrigin. Unparsable attributes are ignored.
func (b *builder) inlineRule(h *html.Node) *style.Rule {
	if b.inline == nil {
		return nil
	}
	text, ok := dom.Attr(h, "style")
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	decls, err := b.inline(text)
	if err != nil {
		tracer().Infof("%s: ignoring style attribute: %v", dom.NodeName(h), err)
		return nil
	}
	return &style.Rule{Declarations: decls, Origin: style.InlineOrigin}
}

// MatchedRule is a rule matching a node, together with the specificity
// of its most specific matching selector.
type MatchedRule struct {
	Specificity style.Specificity
	Rule        *style.Rule
}

// MatchingRules returns the rules of sheet matching node, in source order.
func MatchingRules(node *html.Node, sheet *style.Stylesheet) []MatchedRule {
	if sheet == nil || !dom.IsElement(node) {
		return nil
	}
	var matched []MatchedRule
	for _, r := range sheet.Rules {
		if s, ok := r.Match(node); ok {
			matched = append(matched, MatchedRule{Specificity: s, Rule: r})
		}
	}
	return matched
}

// SpecifiedValues computes the cascaded property map of an element.
//
// Matching rules are applied by origin first (user agent before author),
// then lowest specificity first; for equal origin and specificity, source
// order is kept. Each declaration overwrites what earlier rules set for
// the same property.
func SpecifiedValues(node *html.Node, sheet *style.Stylesheet) *style.PropertyMap {
	return cascade(node, MatchingRules(node, sheet))
}

func cascade(node *html.Node, rules []MatchedRule) *style.PropertyMap {
	pm := style.NewPropertyMap()
	sort.SliceStable(rules, func(i, j int) bool {
		if oi, oj := rules[i].Rule.Origin, rules[j].Rule.Origin; oi != oj {
			return oi < oj
		}
		return rules[i].Specificity.Less(rules[j].Specificity)
	})
	for _, m := range rules {
		for _, decl := range m.Rule.Declarations {
			pm.Set(decl.Name, decl.Value)
		}
	}
	if len(rules) > 0 {
		tracer().Debugf("%s: %d rules -> %s", dom.NodeName(node), len(rules), pm)
	}
	return pm
}
