package style

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/flowbox/core/dimen"
)

// ValueKind tags the variant of a Value.
type ValueKind uint8

// Kinds of CSS values.
const (
	NoValue ValueKind = iota // unset
	KeywordValue
	LengthValue
	PercentValue
	ColorValue
	AutoValue
)

func (k ValueKind) String() string {
	switch k {
	case KeywordValue:
		return "keyword"
	case LengthValue:
		return "length"
	case PercentValue:
		return "percentage"
	case ColorValue:
		return "color"
	case AutoValue:
		return "auto"
	}
	return "none"
}

// Color is an 8-bit RGBA color. It implements image/color.Color.
type Color struct {
	R, G, B, A uint8
}

// RGBA is part of interface color.Color (alpha-premultiplied, 16 bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Value is a CSS value. Values are immutable and comparable with ==.
type Value struct {
	kind    ValueKind
	keyword string
	num     dimen.Dimen // length in px or percentage number
	color   Color
}

// NullValue is the unset value.
var NullValue = Value{}

// Auto returns the symbolic value `auto`.
func Auto() Value {
	return Value{kind: AutoValue}
}

// Keyword creates a keyword value. Keyword "auto" yields Auto().
func Keyword(k string) Value {
	if k == "auto" {
		return Auto()
	}
	return Value{kind: KeywordValue, keyword: k}
}

// Length creates a length value from a dimension in px.
func Length(d dimen.Dimen) Value {
	return Value{kind: LengthValue, num: d}
}

// Px creates a length value of x pixels.
func Px(x float64) Value {
	return Length(dimen.Dimen(x))
}

// Percent creates a percentage value; Percent(50) denotes 50%.
func Percent(p float64) Value {
	return Value{kind: PercentValue, num: dimen.Dimen(p)}
}

// ColorOf creates a color value.
func ColorOf(c Color) Value {
	return Value{kind: ColorValue, color: c}
}

// Kind returns the variant tag of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNone returns true if v is unset.
func (v Value) IsNone() bool {
	return v.kind == NoValue
}

// IsAuto returns true if v is the symbol `auto`.
func (v Value) IsAuto() bool {
	return v.kind == AutoValue
}

// Keyword returns the keyword of a keyword value, "auto" for auto,
// and "" otherwise.
func (v Value) Keyword() string {
	switch v.kind {
	case KeywordValue:
		return v.keyword
	case AutoValue:
		return "auto"
	}
	return ""
}

// Length returns the length of v in px. It returns false for all values
// which are not lengths.
func (v Value) Length() (dimen.Dimen, bool) {
	if v.kind != LengthValue {
		return 0, false
	}
	return v.num, true
}

// Percentage returns the percentage number of v, i.e. 50 for 50%.
func (v Value) Percentage() (float64, bool) {
	if v.kind != PercentValue {
		return 0, false
	}
	return float64(v.num), true
}

// Color returns the color of a color value.
func (v Value) Color() (Color, bool) {
	if v.kind != ColorValue {
		return Color{}, false
	}
	return v.color, true
}

// ToPx returns the pixel size of a length value. All other kinds of values
// yield 0.
func (v Value) ToPx() dimen.Dimen {
	if v.kind == LengthValue {
		return v.num
	}
	return 0
}

func (v Value) String() string {
	switch v.kind {
	case KeywordValue:
		return v.keyword
	case LengthValue:
		return v.num.String()
	case PercentValue:
		return strconv.FormatFloat(float64(v.num), 'f', -1, 64) + "%"
	case ColorValue:
		return v.color.String()
	case AutoValue:
		return "auto"
	}
	return "<none>"
}
