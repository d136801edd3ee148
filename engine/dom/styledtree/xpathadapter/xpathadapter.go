/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access a styled tree, where nodes are of type styledtree.StyNode. Function
Select runs an XPath expression against a styled tree and returns the
matching styled nodes.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

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

3. Neither the name of Norbert Pillmayer nor the names of its contributors
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
package xpathadapter

import (
	"fmt"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'flowbox.dom'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.dom")
}

// NodeNavigator is an xpath.NodeNavigator over a styled tree.
type NodeNavigator struct {
	root, current *styledtree.StyNode
	attr          int // attributes index, -1 if positioned on the node itself
}

// NewNavigator creates a new xpath.NodeNavigator for a styled tree.
func NewNavigator(node *styledtree.StyNode) *NodeNavigator {
	return &NodeNavigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// Current returns the styled node the navigator is positioned on.
func (nav *NodeNavigator) Current() *styledtree.StyNode {
	return nav.current
}

// Select evaluates an XPath expression against the styled tree at root and
// returns all matching styled nodes in document order.
func Select(root *styledtree.StyNode, expr string) ([]*styledtree.StyNode, error) {
	if root == nil {
		return nil, nil
	}
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	var result []*styledtree.StyNode
	seen := make(map[*styledtree.StyNode]bool)
	it := x.Select(NewNavigator(root))
	for it.MoveNext() {
		nav, ok := it.Current().(*NodeNavigator)
		if !ok || seen[nav.current] {
			continue
		}
		seen[nav.current] = true
		result = append(result, nav.current)
	}
	tracer().Debugf("xpath %q selected %d nodes", expr, len(result))
	return result, nil
}

// NodeType is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.HTMLNode().Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode:
		return xpath.RootNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	case html.DoctypeNode:
		// ignored <!DOCTYPE HTML> declare and as Root-Node type.
		return xpath.RootNode
	}
	panic(fmt.Sprintf("unknown node type: %v", nav.current.HTMLNode().Type))
}

// LocalName is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.HTMLNode().Attr[nav.attr].Key
	}
	return nav.current.HTMLNode().Data
}

// Prefix is part of interface xpath.NodeNavigator.
func (*NodeNavigator) Prefix() string {
	return ""
}

// Value is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Value() string {
	switch nav.current.HTMLNode().Type {
	case html.CommentNode:
		return nav.current.HTMLNode().Data
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.HTMLNode().Attr[nav.attr].Val
		}
		return dom.InnerText(nav.current.HTMLNode())
	case html.TextNode:
		return nav.current.HTMLNode().Data
	}
	return ""
}

// Copy is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

// MoveToRoot is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

// MoveToParent is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root || nav.current.Parent() == nil {
		return false
	}
	nav.current = nav.current.Parent()
	return true
}

// MoveToNextAttribute is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.HTMLNode().Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

// MoveToChild is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	child, ok := nav.current.Child(0)
	if ok {
		nav.current = child
	}
	return ok
}

// MoveToFirst is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	first, ok := nav.current.Parent().Child(0)
	if !ok || first == nav.current {
		return false
	}
	nav.current = first
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

// MoveToNext is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	i := position(parent, nav.current)
	next, ok := parent.Child(i + 1)
	if ok {
		nav.current = next
	}
	return ok
}

// MoveToPrevious is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	parent := nav.current.Parent()
	i := position(parent, nav.current)
	prev, ok := parent.Child(i - 1)
	if ok {
		nav.current = prev
	}
	return ok
}

// MoveTo is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func position(parent, node *styledtree.StyNode) int {
	for i, ch := range parent.Children() {
		if ch == node {
			return i
		}
	}
	return -1
}
