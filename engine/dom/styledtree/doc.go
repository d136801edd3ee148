/*
Package styledtree builds the styled tree: the DOM tree with cascaded CSS
properties attached to every node.

BuildStyleTree walks the DOM depth-first. For each element it collects all
rules with a matching selector, sorts them by origin and then by specificity
(stable, so that source order breaks ties) and folds their declarations into
a property map. Later declarations overwrite earlier ones, which makes the
fold the cascade. User agent rules come first, author rules next. With
WithInlineStyles, the `style` attribute of an element is folded in last.
Text, comment and doctype nodes get an empty map.

The styled tree mirrors the DOM exactly: same node count, same order.
Nothing is dropped here, `display:none` is handled by the box tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}
