package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes is a convenience type for constructing element nodes.
type Attributes map[string]string

// Element creates an element node with tag name, attributes and children.
// Children are appended in order.
func Element(tag string, attrs Attributes, children ...*html.Node) *html.Node {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, k := range sortedKeys(attrs) {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs[k]})
	}
	for _, ch := range children {
		if ch != nil {
			n.AppendChild(ch)
		}
	}
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Document wraps a root element in a document node.
func Document(root *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	if root != nil {
		doc.AppendChild(root)
	}
	return doc
}

func sortedKeys(attrs Attributes) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys) // map order is random, keep attributes stable
	return keys
}

// --- Reading nodes ---------------------------------------------------------

// IsElement returns true if n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsText returns true if n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// TagName returns the tag name of an element node, or "" for other nodes.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return n.Data
}

// NodeName returns a W3C-style node name: the tag for elements,
// "#text", "#document", "#comment" or "#doctype" otherwise.
func NodeName(n *html.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}

// Attr returns the value of attribute key of node n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the id attribute of an element, or "".
func ID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return id
}

// Classes returns the whitespace-separated entries of the class attribute.
func Classes(n *html.Node) []string {
	c, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// HasClass returns true if class c is present in the class attribute of n.
func HasClass(n *html.Node, c string) bool {
	for _, cl := range Classes(n) {
		if cl == c {
			return true
		}
	}
	return false
}

// Children returns the child nodes of n in document order.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var kids []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		kids = append(kids, ch)
	}
	return kids
}

// DocumentElement returns the root element of a document node.
// If n is not a document node, n is returned.
func DocumentElement(n *html.Node) *html.Node {
	if n == nil || n.Type != html.DocumentNode {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	tracer().Errorf("document has no root element")
	return nil
}

// InnerText concatenates the text nodes below n.
func InnerText(n *html.Node) string {
	var b strings.Builder
	var output func(*html.Node)
	output = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(child)
		}
	}
	if n != nil {
		output(n)
	}
	return b.String()
}
