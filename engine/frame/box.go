package frame

/*
BSD License

Copyright (c) 2017–2022, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/core/option"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/style/css"
)

// Box type, following the CSS box model. A Box holds the specified (or
// partially resolved) dimensions of a box, as opposed to Dimensions, which
// hold used values.
type Box struct {
	W           css.DimenT    // content width, may be `auto`
	H           css.DimenT    // content height, may be `auto`
	Padding     [4]css.DimenT // inside of border
	BorderWidth [4]css.DimenT // thickness of border
	Margins     [4]css.DimenT // outside of border, maybe `auto`
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// ErrUnderspecified is returned if a dimension calculation cannot be completed
// because the input values are underspecified.
var ErrUnderspecified error = errors.New("box width dimensions are underspecified")

var sides = [4]string{"top", "right", "bottom", "left"}

// BoxFromStyles creates a box from the properties of a styled node.
// Missing properties resolve to their initial values, which is `auto` for
// width and height and 0 for all edges. pm may be nil.
func BoxFromStyles(pm *style.PropertyMap) *Box {
	box := &Box{
		W: css.DimenOption(pm.Get("width")),
		H: css.DimenOption(pm.Get("height")),
	}
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = css.DimenOption(pm.Get("padding-" + sides[dir]))
		box.BorderWidth[dir] = css.DimenOption(pm.Get("border-" + sides[dir] + "-width"))
		box.Margins[dir] = css.DimenOption(pm.Get("margin-" + sides[dir]))
	}
	return box
}

// --- Handling of box dimensions --------------------------------------------

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%v, h=%v\n", box.W, box.H)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// FixPercentages resolves percentage values against the width of the
// enclosing box. This is true for vertical paddings and margins as well.
// Percentage heights cannot be resolved in normal flow and are set to `auto`.
// Unset edges are set to 0, unset dimensions to `auto`.
func (box *Box) FixPercentages(enclosingWidth dimen.Dimen) {
	zero := css.SomeDimen(0)
	box.W = box.W.Resolve(enclosingWidth, css.AutoDimen())
	if box.H.IsPercent() || box.H.IsNone() {
		box.H = css.AutoDimen()
	}
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = box.Padding[dir].Resolve(enclosingWidth, zero)
		box.Margins[dir] = box.Margins[dir].Resolve(enclosingWidth, zero)
	}
}

// InnerDecorationWidth returns the sum of horizontal paddings and border
// widths. Unresolved values count as 0.
func (box *Box) InnerDecorationWidth() dimen.Dimen {
	return box.Padding[Left].OrZero() + box.Padding[Right].OrZero() +
		box.BorderWidth[Left].OrZero() + box.BorderWidth[Right].OrZero()
}

// BorderBoxWidth returns the width of the border box, if known.
func (box *Box) BorderBoxWidth() css.DimenT {
	if !box.W.IsAbsolute() {
		return css.Dimen()
	}
	return css.SomeDimen(box.W.Unwrap() + box.InnerDecorationWidth())
}

// TotalWidth returns the sum of all horizontal dimensions of a box, with
// `auto` values counting as 0.
func (box *Box) TotalWidth() dimen.Dimen {
	return box.Margins[Left].OrZero() + box.Margins[Right].OrZero() +
		box.InnerDecorationWidth() + box.W.OrZero()
}

// FixDimensionsFromEnclosingWidth calculates missing/auto dimensions from the
// width of the enclosing box.
//
// This will distribute space according to the equation (CSS 2.1, section 10.3.3):
//
//     margin-left + border-width-left + padding-left + width +
//       padding-right + border-width-right + margin-right = width of containing block
//
// After a successful call, W and the horizontal margins of box are absolute.
// If the box is over-constrained, margin-right will absorb the difference
// and may become negative.
//
func FixDimensionsFromEnclosingWidth(box *Box, enclosingWidth dimen.Dimen) error {
	tracer().Debugf("fix constraint dimensions, enclosing = %v", enclosingWidth)
	fixIllegalDimensionSpecifications(box)
	box.FixPercentages(enclosingWidth)
	if box.W.IsAbsolute() && box.TotalWidth() > enclosingWidth {
		for _, dir := range []int{Left, Right} {
			if box.Margins[dir].IsAuto() {
				box.Margins[dir] = css.SomeDimen(0)
			}
		}
	}
	calc, err := box.W.Match(option.Of{
		option.None: calcWidthAsRest, // defaults to `auto`
		css.Auto:    calcWidthAsRest,
		option.Some: takeWidth,
	})
	if err != nil {
		return err
	}
	solve := asCalcFn(calc)
	w, err := solve(box, enclosingWidth)
	if err != nil {
		return err
	}
	box.W = w
	tracer().Debugf("dimensions calculated from enclosing width: %s", box.DebugString())
	return nil
}

type calcFn func(box *Box, enclosing dimen.Dimen) (css.DimenT, error)

func asCalcFn(f interface{}) calcFn {
	return f.(func(box *Box, enclosing dimen.Dimen) (css.DimenT, error))
}

func takeWidth(box *Box, enclosing dimen.Dimen) (css.DimenT, error) {
	tracer().Debugf("calculating width: simply take it as is = %v", box.W)
	if err := distributeHorizontalMarginSpace(box, enclosing); err != nil {
		return box.W, err
	}
	return box.W, nil
}

// If 'width' is set to 'auto', any other 'auto' values become '0'
// and 'width' follows from the resulting equality. A negative width is
// clamped to 0 and margin-right takes the overflow.
func calcWidthAsRest(box *Box, enclosing dimen.Dimen) (css.DimenT, error) {
	for _, dir := range []int{Left, Right} {
		m, err := box.Margins[dir].Match(option.Of{
			option.None: dimen.Zero,
			css.Auto:    dimen.Zero,
			option.Some: box.Margins[dir].Unwrap(),
		})
		if err != nil {
			return css.Dimen(), err
		}
		box.Margins[dir] = css.SomeDimen(m.(dimen.Dimen))
	}
	width := enclosing - box.TotalWidth()
	if width < 0 {
		box.Margins[Right] = css.SomeDimen(box.Margins[Right].Unwrap() + width)
		width = 0
	}
	tracer().Debugf("calculate width as rest to w = %v", width)
	return css.SomeDimen(width), nil
}

// distributeHorizontalMarginSpace distributes space into left and right margins
// after the border-box has been fixed. margin-right always takes the rest.
func distributeHorizontalMarginSpace(box *Box, enclosing dimen.Dimen) error {
	bbox := box.BorderBoxWidth()
	if !bbox.IsAbsolute() {
		return ErrUnderspecified
	}
	left, right := box.Margins[Left], box.Margins[Right]
	remaining := enclosing - bbox.Unwrap() - left.OrZero() - right.OrZero()
	l, err := left.Match(option.Of{
		css.Auto: option.Safe(right.Match(option.Of{
			css.Auto:    remaining / 2,
			option.Some: remaining,
		})),
		option.Some: left.Unwrap(),
	})
	if err != nil {
		tracer().Errorf("distribute h-margins: %s", err.Error())
		return err
	}
	box.Margins[Left] = css.SomeDimen(l.(dimen.Dimen))
	box.Margins[Right] = css.SomeDimen(enclosing - bbox.Unwrap() - l.(dimen.Dimen))
	return nil
}

// FixVerticalEdges sets vertical `auto` margins to 0. Percentages have to be
// resolved beforehand.
func (box *Box) FixVerticalEdges() {
	for _, dir := range []int{Top, Bottom} {
		if !box.Margins[dir].IsAbsolute() {
			box.Margins[dir] = css.SomeDimen(0)
		}
	}
}

// Property   Default    Valid values           Purpose
// ---------+----------+----------------------+-----------------------------------
// padding    Varies     length or percentage 	Controls the size of the padding.
//                                              Negative values are not allowed.
//                                              Percentages refer to width of the
//                                              containing block.
//
// Border widths do not accept percentages.
//
func fixIllegalDimensionSpecifications(box *Box) {
	for dir := Top; dir <= Left; dir++ {
		padd := box.Padding[dir]
		if padd.IsAuto() || (padd.IsAbsolute() && padd.Unwrap() < 0) {
			box.Padding[dir] = css.SomeDimen(0)
		}
		bord := box.BorderWidth[dir]
		if !bord.IsAbsolute() || bord.Unwrap() < 0 {
			box.BorderWidth[dir] = css.SomeDimen(0)
		}
	}
}
