package frame

import (
	"fmt"

	"github.com/npillmayer/flowbox/core/dimen"
)

// Rect is a rectangle with its origin at the top left corner.
type Rect struct {
	X, Y dimen.Dimen
	W, H dimen.Dimen
}

// EdgeSizes holds the thickness of the four edges of a box, indexed by
// Top, Right, Bottom and Left.
type EdgeSizes [4]dimen.Dimen

// Edges creates edge sizes in clockwise order, starting at the top.
func Edges(top, right, bottom, left dimen.Dimen) EdgeSizes {
	return EdgeSizes{top, right, bottom, left}
}

// Horizontal returns the sum of the left and right edges.
func (e EdgeSizes) Horizontal() dimen.Dimen {
	return e[Left] + e[Right]
}

// Vertical returns the sum of the top and bottom edges.
func (e EdgeSizes) Vertical() dimen.Dimen {
	return e[Top] + e[Bottom]
}

func (e EdgeSizes) String() string {
	return fmt.Sprintf("[%v %v %v %v]", e[Top], e[Right], e[Bottom], e[Left])
}

// ExpandedBy returns r grown outward by the edges e.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X: r.X - e[Left],
		Y: r.Y - e[Top],
		W: r.W + e.Horizontal(),
		H: r.H + e.Vertical(),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%v,%v)+(%v,%v)", r.X, r.Y, r.W, r.H)
}

// Dimensions holds the used values of a laid out box. Content is the content
// area, positioned absolutely; the edges surround it.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box plus borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box plus margins.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// DebugString returns a textual representation of the used dimensions.
// Intended for debugging.
func (d Dimensions) DebugString() string {
	return fmt.Sprintf("dim{content=%v, p=%v, b=%v, m=%v}",
		d.Content, d.Padding, d.Border, d.Margin)
}

// UsedEdges returns the edges of a box as used values. Percentages have to
// be resolved beforehand; every non-absolute value counts as 0.
func (box *Box) UsedEdges() (padding, border, margin EdgeSizes) {
	for dir := Top; dir <= Left; dir++ {
		padding[dir] = box.Padding[dir].OrZero()
		border[dir] = box.BorderWidth[dir].OrZero()
		margin[dir] = box.Margins[dir].OrZero()
	}
	return
}
