package style

import (
	"strings"

	"github.com/npillmayer/flowbox/engine/dom"
	"golang.org/x/net/html"
)

// SimpleSelector is a CSS simple selector: an optional tag name, an optional
// id and a set of classes. Empty parts match everything.
//
//     div#main.note.wide
//
type SimpleSelector struct {
	Tag     string   // "" or "*" is the universal selector
	ID      string   // "" matches any id
	Classes []string // all of these must be present
}

// Specificity is the precedence weight of a selector, compared
// lexicographically: ids before classes before tags.
type Specificity struct {
	IDs, Classes, Tags int
}

// Less returns true if s has lower precedence than other.
func (s Specificity) Less(other Specificity) bool {
	if s.IDs != other.IDs {
		return s.IDs < other.IDs
	}
	if s.Classes != other.Classes {
		return s.Classes < other.Classes
	}
	return s.Tags < other.Tags
}

// Specificity returns the specificity of a simple selector.
func (sel SimpleSelector) Specificity() Specificity {
	s := Specificity{Classes: len(sel.Classes)}
	if sel.ID != "" {
		s.IDs = 1
	}
	if sel.Tag != "" && sel.Tag != "*" {
		s.Tags = 1
	}
	return s
}

// Matches returns true if node is an element matched by sel.
func (sel SimpleSelector) Matches(node *html.Node) bool {
	if !dom.IsElement(node) {
		return false
	}
	if sel.Tag != "" && sel.Tag != "*" && sel.Tag != node.Data {
		return false
	}
	if sel.ID != "" && sel.ID != dom.ID(node) {
		return false
	}
	if len(sel.Classes) > 0 {
		present := dom.Classes(node)
		for _, c := range sel.Classes {
			if !contains(present, c) {
				return false
			}
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func (sel SimpleSelector) String() string {
	var b strings.Builder
	if sel.Tag == "" {
		if sel.ID == "" && len(sel.Classes) == 0 {
			b.WriteString("*")
		}
	} else {
		b.WriteString(sel.Tag)
	}
	if sel.ID != "" {
		b.WriteString("#")
		b.WriteString(sel.ID)
	}
	for _, c := range sel.Classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	return b.String()
}
