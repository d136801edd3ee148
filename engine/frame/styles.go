package frame

/*
BSD 3-Clause License

Copyright (c) 2020–22, Norbert Pillmayer
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"image/color"

	"github.com/npillmayer/flowbox/engine/dom/style"
)

// Box styling: We follow the CSS paradigm for boxes. Boxes are stylable
// objects which have dimensions, spacing, borders and colors. The layout
// engine itself does not use colors; they are carried for debug output.

// ColorStyle is a type for styling with color.
type ColorStyle struct {
	Foreground color.Color
	Background color.Color // may be (semi-)transparent or nil
	Border     [4]color.Color
}

// Styling rolls all styling options into one type.
type Styling struct {
	Colors ColorStyle
}

// StylingOf extracts the styling options of a property map. Unset colors
// are nil, except for the foreground color, which defaults to black.
func StylingOf(pm *style.PropertyMap) Styling {
	var st Styling
	st.Colors.Foreground = colorOf(pm.Get("color"))
	st.Colors.Background = colorOf(pm.Get("background-color"))
	for dir := Top; dir <= Left; dir++ {
		st.Colors.Border[dir] = colorOf(pm.Get("border-" + sides[dir] + "-color"))
	}
	return st
}

func colorOf(v style.Value) color.Color {
	if c, ok := v.Color(); ok {
		return c
	}
	return nil
}
