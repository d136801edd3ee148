/*
Package layout sizes and positions the boxes of a layout tree.

Overview

Layout follows the CSS 2.1 visual formatting model for block boxes. For each
box the width is computed from the width of the containing block, then the
box is positioned, its children are laid out top to bottom, and finally the
height is computed, either from an explicit `height` or from the heights of
the children.

Inline boxes and anonymous block boxes are laid out like block boxes: this
engine does no line breaking, so inline content stacks vertically.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.layout")
}
