/*
Package dom provides helpers for reading and constructing HTML DOM trees.

The DOM itself is a tree of *html.Node from golang.org/x/net/html, owned by
whoever parsed or constructed it. Stages downstream (styled tree, layout
tree) only keep non-owning references to DOM nodes and never modify them.

CSS selector queries are delegated to github.com/andybalholm/cascadia.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}
