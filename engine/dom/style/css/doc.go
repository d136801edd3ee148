/*
Package css implements option types for CSS dimensions.

A DimenT is either unset, `auto`, a percentage or an absolute length. Layout
code matches on these cases with package option:

    w, _ := width.Match(option.Of{
        option.None: …,
        css.Auto:    …,
        option.Some: …,
    })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}
