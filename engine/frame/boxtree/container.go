package boxtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame"
	"golang.org/x/net/html"
)

// BoxType is the type of a layout box. The set of box types is closed.
type BoxType uint8

// Box types of the layout tree.
const (
	NoBox             BoxType = iota // zero value, never created by the builder
	BlockBox                         // block-level box of a styled node
	InlineBox                        // inline-level box of a styled node
	AnonymousBlockBox                // block box wrapping a run of inline boxes
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBlockBox:
		return "anonymous"
	}
	return "nobox"
}

// LayoutBox is a node of the layout tree.
//
// Boxes of type BlockBox and InlineBox refer back to their styled node,
// which in turn refers to the DOM. Anonymous boxes have no styled node.
// A box owns its children. Dimensions are written by the layout engine.
type LayoutBox struct {
	Type       BoxType
	Dimensions frame.Dimensions
	Children   []*LayoutBox
	node       *styledtree.StyNode
}

// NewBox creates a box of type t for a styled node. sn may be nil for
// anonymous boxes.
func NewBox(t BoxType, sn *styledtree.StyNode) *LayoutBox {
	return &LayoutBox{Type: t, node: sn}
}

// StyledNode returns the styled node this box has been created for, or nil
// for anonymous boxes.
func (b *LayoutBox) StyledNode() *styledtree.StyNode {
	if b == nil {
		return nil
	}
	return b.node
}

// HTMLNode returns the DOM node this box has been created for, or nil
// for anonymous boxes.
func (b *LayoutBox) HTMLNode() *html.Node {
	if b.StyledNode() == nil {
		return nil
	}
	return b.node.HTMLNode()
}

// Styles returns the property map of the box's styled node. Anonymous boxes
// return an empty map, i.e. all properties resolve to their initial values.
func (b *LayoutBox) Styles() *style.PropertyMap {
	if b.StyledNode() == nil || b.node.Styles() == nil {
		return style.NewPropertyMap()
	}
	return b.node.Styles()
}

// CSSBox returns the specified box dimensions of b, derived from its styles.
func (b *LayoutBox) CSSBox() *frame.Box {
	return frame.BoxFromStyles(b.Styles())
}

// Styling returns the visual styles of b.
func (b *LayoutBox) Styling() frame.Styling {
	return frame.StylingOf(b.Styles())
}

// AddChild appends a child box.
func (b *LayoutBox) AddChild(child *LayoutBox) {
	if child == nil {
		return
	}
	b.Children = append(b.Children, child)
}

// inlineContainer returns the box to which inline children are appended.
// For block boxes this is a trailing anonymous box, which will be created
// if the last child is not already an anonymous box. Inline and anonymous
// boxes contain inline content directly.
func (b *LayoutBox) inlineContainer() *LayoutBox {
	switch b.Type {
	case InlineBox, AnonymousBlockBox:
		return b
	}
	if n := len(b.Children); n > 0 && b.Children[n-1].Type == AnonymousBlockBox {
		return b.Children[n-1]
	}
	anon := NewBox(AnonymousBlockBox, nil)
	b.AddChild(anon)
	return anon
}

// Size returns the number of boxes in the subtree rooted at b.
func (b *LayoutBox) Size() int {
	n := 0
	Walk(b, func(*LayoutBox, int) error {
		n++
		return nil
	})
	return n
}

func (b *LayoutBox) String() string {
	return fmt.Sprintf("%s[%s]", b.Type, ContainerName(b))
}

// ----------------------------------------------------------------------------------

// ContainerName returns a short name for a box, suitable for debugging output.
func ContainerName(b *LayoutBox) string {
	if b == nil {
		return "none"
	}
	h := b.HTMLNode()
	if h == nil {
		return "anon-box"
	}
	if h.Type == html.TextNode {
		return shortText(h)
	}
	return dom.NodeName(h)
}

func shortText(h *html.Node) string {
	txt := []rune(h.Data)
	s := "\""
	if len(txt) > 10 {
		s += string(txt[:10]) + "…\""
	} else {
		s += string(txt) + "\""
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return s
}
