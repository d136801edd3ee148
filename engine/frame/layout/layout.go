package layout

import (
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
)

// Invaluable:
// https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model
// https://www.w3.org/TR/CSS2/visudet.html#blockwidth

// LayoutTree creates the layout tree for a styled tree and lays it out within
// a viewport. The height of the viewport is ignored, as boxes grow downwards
// from its top edge.
func LayoutTree(styled *styledtree.StyNode, viewport frame.Dimensions) (*boxtree.LayoutBox, error) {
	root, err := boxtree.BuildLayoutTree(styled)
	if err != nil {
		return nil, err
	}
	viewport.Content.H = 0
	Layout(root, viewport)
	return root, nil
}

// Layout computes the dimensions of box and all of its descendants, relative
// to a containing block. Dimensions are overwritten on every call, i.e.
// laying out a tree twice with the same containing block yields the same
// dimensions.
func Layout(box *boxtree.LayoutBox, cb ContainingBlock) {
	if box == nil {
		return
	}
	switch box.Type {
	case boxtree.BlockBox:
		layoutBlock(box, cb)
	case boxtree.InlineBox:
		layoutBlock(box, cb) // no line breaking: inline boxes stack like blocks
	case boxtree.AnonymousBlockBox:
		layoutBlock(box, cb)
	default:
		// BoxType is a closed set and BuildLayoutTree never creates NoBox,
		// so only hand-made boxes end up here. They are left untouched.
		tracer().Errorf("cannot lay out box of type %s", box.Type)
	}
}

func layoutBlock(box *boxtree.LayoutBox, cb ContainingBlock) {
	cssbox := box.CSSBox()
	calculateBlockWidth(box, cssbox, cb)
	calculateBlockPosition(box, cb)
	layoutBlockChildren(box)
	calculateBlockHeight(box, cssbox)
	tracer().Debugf("laid out %s: %s", box, box.Dimensions.DebugString())
}

// calculateBlockWidth solves the horizontal dimensions of a box and stores
// them as used values. Vertical edges are fixed as well, as percentages
// refer to the width of the containing block.
func calculateBlockWidth(box *boxtree.LayoutBox, cssbox *frame.Box, cb ContainingBlock) {
	if err := frame.FixDimensionsFromEnclosingWidth(cssbox, availableWidth(cb)); err != nil {
		tracer().Errorf("width of %s: %v", box, err)
	}
	cssbox.FixVerticalEdges()
	d := &box.Dimensions
	d.Content.W = cssbox.W.OrZero()
	d.Padding, d.Border, d.Margin = cssbox.UsedEdges()
}

func calculateBlockPosition(box *boxtree.LayoutBox, cb ContainingBlock) {
	d := &box.Dimensions
	d.Content.X = cb.Content.X + d.Margin[frame.Left] + d.Border[frame.Left] + d.Padding[frame.Left]
	d.Content.Y = flowCursor(cb) + d.Margin[frame.Top] + d.Border[frame.Top] + d.Padding[frame.Top]
}

// layoutBlockChildren stacks the children of box vertically. The content
// height of box serves as the flow cursor and starts at 0.
func layoutBlockChildren(box *boxtree.LayoutBox) {
	d := &box.Dimensions
	d.Content.H = 0
	for _, child := range box.Children {
		Layout(child, *d)
		d.Content.H += child.Dimensions.MarginBox().H
	}
}

// calculateBlockHeight overrides the height of the children with an explicit
// height, if set. Negative heights are ignored.
func calculateBlockHeight(box *boxtree.LayoutBox, cssbox *frame.Box) {
	if h := cssbox.H; h.IsAbsolute() && h.Unwrap() >= 0 {
		box.Dimensions.Content.H = h.Unwrap()
	}
}
