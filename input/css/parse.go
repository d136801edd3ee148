package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Parse reads CSS text into a stylesheet. At-rules are ignored.
// Parse fails only if the CSS text cannot be tokenized.
func Parse(text string) (*style.Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse stylesheet")
	}
	ss := style.NewStylesheet()
	for _, r := range sheet.Rules {
		if rule := convertRule(r); rule != nil {
			ss.Rules = append(ss.Rules, rule)
		}
	}
	tracer().Debugf("stylesheet has %d rules", ss.Size())
	return ss, nil
}

// ParseDeclarations reads a list of declarations, as found in a `style`
// attribute. The last declaration need not be terminated by a semicolon.
func ParseDeclarations(text string) ([]style.Declaration, error) {
	// douceur silently drops an unterminated last declaration
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse declarations")
	}
	return convertDeclarations(decls), nil
}

func convertRule(r *dcss.Rule) *style.Rule {
	if r.Kind != dcss.QualifiedRule {
		tracer().Infof("ignoring at-rule %s", r.Name)
		return nil
	}
	rule := &style.Rule{}
	for _, s := range r.Selectors {
		sel, err := ParseSelector(s)
		if err != nil {
			tracer().Infof("skipping selector %q: %v", s, err)
			continue
		}
		rule.Selectors = append(rule.Selectors, sel)
	}
	if len(rule.Selectors) == 0 {
		tracer().Infof("skipping rule %q: no usable selector", r.Prelude)
		return nil
	}
	rule.Declarations = convertDeclarations(r.Declarations)
	return rule
}

func convertDeclarations(decls []*dcss.Declaration) []style.Declaration {
	var converted []style.Declaration
	for _, d := range decls {
		name := fold.String(strings.TrimSpace(d.Property))
		if !style.KnownProperty(name) {
			tracer().Debugf("property %q is not interpreted by layout", name)
		}
		values, err := ParseValues(name, d.Value)
		if err != nil {
			tracer().Infof("dropping declaration %s: %v", name, err)
			continue
		}
		switch {
		case len(style.Longhands(name)) > 0 && len(values) <= 4:
			for _, side := range expandEdges(name, values) {
				side.Important = d.Important
				converted = append(converted, side)
			}
		case len(values) == 1:
			converted = append(converted, style.Declaration{Name: name, Value: values[0], Important: d.Important})
		default:
			tracer().Infof("dropping declaration %s: too many values", name)
		}
	}
	return converted
}

// expandEdges expands a box-edge shorthand with 1 to 4 values into its
// longhands. Values are given in CSS order top, right, bottom, left.
func expandEdges(shorthand string, values []style.Value) []style.Declaration {
	var top, right, bottom, left style.Value
	switch len(values) {
	case 1:
		top, right, bottom, left = values[0], values[0], values[0], values[0]
	case 2:
		top, right, bottom, left = values[0], values[1], values[0], values[1]
	case 3:
		top, right, bottom, left = values[0], values[1], values[2], values[1]
	default:
		top, right, bottom, left = values[0], values[1], values[2], values[3]
	}
	bySide := map[string]style.Value{"top": top, "right": right, "bottom": bottom, "left": left}
	var decls []style.Declaration
	for _, longhand := range style.Longhands(shorthand) {
		for side, v := range bySide {
			if strings.Contains(longhand, "-"+side) {
				decls = append(decls, style.Declaration{Name: longhand, Value: v})
			}
		}
	}
	return decls
}
