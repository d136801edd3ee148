/*
Package css reads CSS stylesheets for layout.

CSS text is tokenized and split into rules by the douceur parser. Selectors
are checked with cascadia; of the valid ones, simple selectors (a tag, an id
and classes, e.g. `p#intro.note`) are kept. Selectors using combinators,
attributes or pseudo-classes are skipped. Values are converted to style
values: lengths, percentages, `auto`, colors and keywords.

Errors in single declarations never abort parsing: an unusable declaration
is dropped and the property falls back to its initial value during layout.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.input'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.input")
}
