/*
Package boxtree produces a layout tree from a styled tree.

Every styled node with a display mode other than `none` creates a box.
Block boxes keep their children homogeneous: inline boxes are wrapped into
anonymous block boxes whenever they share a parent with block boxes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.frame.box")
}
