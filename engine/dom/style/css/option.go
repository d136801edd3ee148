package css

import (
	"strconv"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/core/option"
	"github.com/npillmayer/flowbox/engine/dom/style"
)

// PropertyType is a helper type for special values of properties.
type PropertyType int

// Auto and Percent are constant values for options-matching.
// Use with
//     option.Of{
//          css.Auto: …   // will match a CSS property option-type with value "auto"
//     }
const (
	Auto    PropertyType = 1 // for option matching
	Percent PropertyType = 2 // for option matching: dimension is relative to containing block
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenPRCNT    uint32 = 0x0100
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.Dimen
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// AutoDimen creates an optional dimen with value `auto`.
func AutoDimen() DimenT {
	return DimenT{flags: dimenAuto}
}

// PercentDimen creates an optional dimen for a percentage; 50 denotes 50%.
func PercentDimen(p float64) DimenT {
	return DimenT{d: dimen.Dimen(p), flags: dimenPRCNT}
}

// Match is part of interface option.Type.
func (o DimenT) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case DimenT:
		return o.d == i.d && o.flags == i.flags
	case dimen.Dimen:
		return o.IsAbsolute() && o.Unwrap() == i
	case float64:
		return o.IsAbsolute() && o.Unwrap() == dimen.Dimen(i)
	case int:
		return o.IsAbsolute() && o.Unwrap() == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case Auto:
			return o.flags == dimenAuto
		case Percent:
			return o.flags == dimenPRCNT
		}
	case string:
		switch i {
		case "%":
			return o.IsPercent()
		case "auto":
			return o.IsAuto()
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o. For percentages this is the
// plain percentage number.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsAuto returns true if o has value `auto`.
func (o DimenT) IsAuto() bool {
	return o.flags == dimenAuto
}

// IsPercent returns true if o is relative to the containing block.
func (o DimenT) IsPercent() bool {
	return o.flags == dimenPRCNT
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

func (o DimenT) String() string {
	switch o.flags {
	case dimenNone:
		return "DimenT.None"
	case dimenAuto:
		return "auto"
	case dimenPRCNT:
		return strconv.FormatFloat(float64(o.d), 'f', -1, 64) + "%"
	}
	return o.d.String()
}

// DimenOption returns an optional dimension type from a property value.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func DimenOption(v style.Value) DimenT {
	switch v.Kind() {
	case style.AutoValue:
		return AutoDimen()
	case style.LengthValue:
		d, _ := v.Length()
		return SomeDimen(d)
	case style.PercentValue:
		p, _ := v.Percentage()
		return PercentDimen(p)
	}
	if !v.IsNone() {
		tracer().Debugf("value %v is not a dimension", v)
	}
	return Dimen()
}

// Resolve makes o absolute: percentages are taken of base, unset dimensions
// fall back to dflt. `auto` stays `auto`.
func (o DimenT) Resolve(base dimen.Dimen, dflt DimenT) DimenT {
	r, _ := o.Match(option.Of{
		option.None: dflt,
		Auto:        o,
		Percent:     SomeDimen(o.d * base / 100),
		option.Some: o,
	})
	return r.(DimenT)
}

// OrZero returns the absolute dimension of o, treating every other case
// (unset, auto, unresolved percentage) as 0.
func (o DimenT) OrZero() dimen.Dimen {
	if o.IsAbsolute() {
		return o.d
	}
	return 0
}

// MaxDimen returns the greater of two dimensions.
func MaxDimen(d1, d2 DimenT) DimenT {
	max, _ := d1.Match(option.Maybe{
		option.None: d2,
		option.Some: option.Safe(d2.Match(option.Maybe{
			option.None: d1,
			option.Some: SomeDimen(dimen.Max(d1.Unwrap(), d2.Unwrap())),
		})),
	})
	return max.(DimenT)
}

// MinDimen returns the lesser of two dimensions.
func MinDimen(d1, d2 DimenT) DimenT {
	min, _ := d1.Match(option.Maybe{
		option.None: d2,
		option.Some: option.Safe(d2.Match(option.Maybe{
			option.None: d1,
			option.Some: SomeDimen(dimen.Min(d1.Unwrap(), d2.Unwrap())),
		})),
	})
	return min.(DimenT)
}

var _ option.Type = DimenT{}
