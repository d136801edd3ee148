/*
Package html reads HTML documents for layout.

Parsing is done by golang.org/x/net/html, which follows the HTML5 parsing
algorithm and will not fail on malformed markup. The contents of `<style>`
elements are collected, to be appended to the author stylesheet.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/schuko/tracing"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'flowbox.input'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.input")
}

// Document is a parsed HTML document.
type Document struct {
	Root   *nethtml.Node // the document node
	Styles []string      // contents of <style> elements, in document order
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := nethtml.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.ESYNTAX, "cannot parse HTML input")
	}
	doc := &Document{Root: root}
	collectStyles(root, doc)
	tracer().Debugf("parsed HTML document with %d style elements", len(doc.Styles))
	return doc, nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// DocumentElement returns the root element of the document, usually <html>.
// This is the root for layout.
func (doc *Document) DocumentElement() *nethtml.Node {
	if doc == nil {
		return nil
	}
	return dom.DocumentElement(doc.Root)
}

// StyleText returns the contents of all <style> elements, concatenated.
func (doc *Document) StyleText() string {
	return strings.Join(doc.Styles, "\n")
}

func collectStyles(n *nethtml.Node, doc *Document) {
	if n.Type == nethtml.ElementNode && n.DataAtom == atom.Style {
		if css := dom.InnerText(n); strings.TrimSpace(css) != "" {
			doc.Styles = append(doc.Styles, css)
		}
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectStyles(ch, doc)
	}
}
