/*
Package style holds the CSS value model of the engine: values, property maps,
simple selectors, specificity, rules and stylesheets.

Values are a closed set of kinds: keyword, length (always in CSS px),
percentage, color and the symbol `auto`. Missing or unparsable values are
never errors; consumers resolve them to initial values with
PropertyMap.Get or PropertyMap.Lookup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}
