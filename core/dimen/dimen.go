// Package dimen implements CSS dimensions and absolute units.
//
/*
BSD License

Copyright (c) 2017–22, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dimen is a dimension type.
// Values are in CSS pixels (1/96 inch), as floating point numbers.
type Dimen float64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	PX   Dimen = 1           // CSS "pixels"
	IN   Dimen = 96          // inch
	PT   Dimen = 96.0 / 72.0 // point = 1/72 inch
	PC   Dimen = 12 * PT     // pica
	CM   Dimen = 96.0 / 2.54 // centimeters
	MM   Dimen = 96.0 / 25.4 // millimeters
)

// Infinity is the largest possible dimension
const Infinity = Dimen(math.MaxFloat64)

// Stringer implementation.
func (d Dimen) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64) + "px"
}

// Px returns a dimension as a plain float64 in CSS pixels.
func (d Dimen) Px() float64 {
	return float64(d)
}

// Points returns a dimension in printer's points.
func (d Dimen) Points() float64 {
	return float64(d / PT)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|[a-zA-Z]{2})?$`)

// ErrDimenFormat is returned for strings which do not denote a dimension.
var ErrDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the plain percentage number.
//
// Numbers without a unit are accepted for 0 only, as in CSS.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return 0, false, ErrDimenFormat
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, ErrDimenFormat
	}
	scale := PX
	ispcnt := false
	switch strings.ToLower(d[2]) {
	case "px":
		scale = PX
	case "pt":
		scale = PT
	case "pc":
		scale = PC
	case "mm":
		scale = MM
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "%":
		ispcnt = true
	case "":
		if n != 0 {
			return 0, false, fmt.Errorf("%w: unit missing in %q", ErrDimenFormat, s)
		}
	default:
		return 0, false, fmt.Errorf("%w: unknown unit in %q", ErrDimenFormat, s)
	}
	return Dimen(n) * scale, ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Sum adds up a sequence of dimensions.
func Sum(dims ...Dimen) Dimen {
	s := Zero
	for _, d := range dims {
		s += d
	}
	return s
}
