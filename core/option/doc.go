/*
Package option implements matching on option types.

Option types are values which may be unset or carry special symbolic
values (like CSS `auto`) besides a regular value. Clients call

    v, err := x.Match(option.Of{
        option.None: …,     // x is unset
        someConst:   …,     // x equals someConst
        option.Some: …,     // any other value
    })

Map values may be plain values or functions, which will be called with x.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.core'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.core")
}
