package boxtree

import (
	"errors"

	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame"
	"golang.org/x/net/html"
)

// ErrDOMRootIsNull is returned for a missing styled tree.
var ErrDOMRootIsNull = errors.New("DOM root is null")

// ErrNoBoxTreeCreated is returned if the root of the styled tree does not
// produce a box, e.g. for `display:none`.
var ErrNoBoxTreeCreated = errors.New("no box tree created")

// BuildLayoutTree creates an unsized layout tree from a styled tree.
//
// Nodes with `display:none` are dropped together with their subtree.
// Runs of inline children of a block box are wrapped into anonymous block
// boxes, so that the children of a block box are either all block boxes
// or all anonymous ones.
func BuildLayoutTree(root *styledtree.StyNode) (*LayoutBox, error) {
	if root == nil {
		return nil, ErrDOMRootIsNull
	}
	tracer().Debugf("creating layout tree for %s", root.NodeName())
	box := buildBox(root)
	if box == nil {
		tracer().Errorf("no box created for root style node")
		return nil, ErrNoBoxTreeCreated
	}
	tracer().Infof("layout tree contains %d boxes", box.Size())
	return box, nil
}

func buildBox(sn *styledtree.StyNode) *LayoutBox {
	t := boxTypeFor(sn)
	if t == NoBox {
		return nil
	}
	box := NewBox(t, sn)
	for _, ch := range sn.Children() {
		child := buildBox(ch)
		if child == nil {
			continue
		}
		switch child.Type {
		case BlockBox:
			box.AddChild(child)
		case InlineBox:
			box.inlineContainer().AddChild(child)
		default:
			tracer().Errorf("unexpected child box type %s", child.Type)
		}
	}
	return box
}

// boxTypeFor classifies a styled node. Comments and doctype nodes produce no
// box, neither do nodes with `display:none`.
func boxTypeFor(sn *styledtree.StyNode) BoxType {
	h := sn.HTMLNode()
	if h != nil {
		switch h.Type {
		case html.CommentNode, html.DoctypeNode:
			return NoBox
		case html.DocumentNode:
			return BlockBox
		}
	}
	switch frame.DisplayModeOf(sn.Styles()) {
	case frame.BlockMode:
		return BlockBox
	case frame.InlineMode:
		return InlineBox
	}
	return NoBox
}
