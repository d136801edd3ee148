/*
Package frame deals with layout frames.

Layout may be understood as the process of placing boxes within larger
boxes. Boxes follow the CSS box model: a content area, surrounded by
padding, border and margin edges.

This package holds the types shared by the box tree builder and the layout
engine: the box model with its specified dimensions (Box), the used values
after layout (Dimensions), display modes and styling.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.frame")
}
