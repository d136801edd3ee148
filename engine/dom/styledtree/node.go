package styledtree

/*
BSD License

Copyright (c) 2017–22, Norbert Pillmayer

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
	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
//
// A StyNode owns its children. The reference to the HTML node and to the
// parent are non-owning back-references.
type StyNode struct {
	htmlNode       *html.Node
	computedStyles *style.PropertyMap
	parent         *StyNode
	children       []*StyNode
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
// If styles is nil, an empty property map is used.
func NewNodeForHTMLNode(h *html.Node, styles *style.PropertyMap) *StyNode {
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	return &StyNode{
		htmlNode:       h,
		computedStyles: styles,
	}
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the cascaded property map of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// Value is a shortcut for sn.Styles().Value(key).
func (sn *StyNode) Value(key string) (style.Value, bool) {
	return sn.computedStyles.Value(key)
}

// Parent returns the parent of sn, or nil for the root.
func (sn *StyNode) Parent() *StyNode {
	return sn.parent
}

// AddChild appends a child node. The child is re-parented to sn.
func (sn *StyNode) AddChild(ch *StyNode) {
	if ch == nil {
		return
	}
	ch.parent = sn
	sn.children = append(sn.children, ch)
}

// ChildCount returns the number of children of sn.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns the child at position i.
func (sn *StyNode) Child(i int) (*StyNode, bool) {
	if i < 0 || i >= len(sn.children) {
		return nil, false
	}
	return sn.children[i], true
}

// Children returns the children of sn. Clients must not modify the slice.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// NodeName returns the W3C node name of the underlying HTML node.
func (sn *StyNode) NodeName() string {
	return dom.NodeName(sn.htmlNode)
}

// Size returns the number of nodes in the subtree rooted at sn.
func (sn *StyNode) Size() int {
	n := 1
	for _, ch := range sn.children {
		n += ch.Size()
	}
	return n
}
