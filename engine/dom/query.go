package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns the first node below (and including) root matching the CSS
// selector group sel.
func Query(root *html.Node, sel string) (*html.Node, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	if s.Match(root) {
		return root, nil
	}
	return s.MatchFirst(root), nil
}

// QueryAll returns all nodes below root matching the CSS selector group sel,
// in document order.
func QueryAll(root *html.Node, sel string) ([]*html.Node, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	nodes := s.MatchAll(root)
	tracer().Debugf("query %q matched %d nodes", sel, len(nodes))
	return nodes, nil
}
