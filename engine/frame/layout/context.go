package layout

import (
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
)

// https://developer.mozilla.org/en-US/docs/Web/CSS/Containing_block

// ContainingBlock is the context handed down the layout recursion.
//
// Its content rectangle is the content area of the parent box. Content.H is
// the flow cursor: the height of the siblings laid out so far. Children are
// placed at Content.Y + Content.H.
type ContainingBlock = frame.Dimensions

// InitialContainingBlock returns the containing block for the root box of
// a layout tree: a viewport of the given width at the origin, with a flow
// cursor of 0.
func InitialContainingBlock(viewportWidth dimen.Dimen) ContainingBlock {
	return ContainingBlock{
		Content: frame.Rect{W: viewportWidth},
	}
}

// availableWidth is the width to distribute between the horizontal dimensions
// of a box.
func availableWidth(cb ContainingBlock) dimen.Dimen {
	return cb.Content.W
}

// flowCursor is the vertical position where the border of the next box
// starts, minus its top margin.
func flowCursor(cb ContainingBlock) dimen.Dimen {
	return cb.Content.Y + cb.Content.H
}
