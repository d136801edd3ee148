package boxtree_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func tag(t string) style.SimpleSelector {
	return style.SimpleSelector{Tag: t}
}

var blocks = style.NewStylesheet(
	style.NewRule(tag("div"), "display", style.Keyword("block")),
	style.NewRule(tag("p"), "display", style.Keyword("block")),
	style.NewRule(style.SimpleSelector{Classes: []string{"hidden"}}, "display", style.Keyword("none")),
)

func buildBoxes(t *testing.T, root *html.Node) *boxtree.LayoutBox {
	sn := styledtree.BuildStyleTree(root, blocks)
	box, err := boxtree.BuildLayoutTree(sn)
	require.NoError(t, err)
	require.NotNil(t, box)
	return box
}

func types(box *boxtree.LayoutBox) []boxtree.BoxType {
	var tt []boxtree.BoxType
	for _, ch := range box.Children {
		tt = append(tt, ch.Type)
	}
	return tt
}

func TestAnonymousBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	root := dom.Element("div", nil,
		dom.Text("a"),
		dom.Element("span", nil),
		dom.Element("p", nil),
		dom.Text("b"),
	)
	box := buildBoxes(t, root)
	assert.Equal(t, boxtree.BlockBox, box.Type)
	assert.Equal(t, []boxtree.BoxType{
		boxtree.AnonymousBlockBox, boxtree.BlockBox, boxtree.AnonymousBlockBox,
	}, types(box))
	assert.Equal(t, 2, len(box.Children[0].Children))
	assert.Equal(t, []boxtree.BoxType{boxtree.InlineBox, boxtree.InlineBox}, types(box.Children[0]))
	assert.Nil(t, box.Children[0].StyledNode())
	assert.Equal(t, 0, box.Children[0].Styles().Size())
	assert.Equal(t, "anon-box", boxtree.ContainerName(box.Children[0]))
	assert.Equal(t, "p", boxtree.ContainerName(box.Children[1]))
}

func TestBlockChildrenStayHomogeneous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	root := dom.Element("div", nil,
		dom.Element("b", nil), dom.Element("i", nil),
		dom.Element("p", nil), dom.Element("p", nil),
		dom.Element("em", nil),
	)
	box := buildBoxes(t, root)
	err := boxtree.Walk(box, func(b *boxtree.LayoutBox, depth int) error {
		if b.Type != boxtree.BlockBox {
			return nil
		}
		hasBlock, hasInline := false, false
		for _, ch := range b.Children {
			switch ch.Type {
			case boxtree.InlineBox:
				hasInline = true
			default:
				hasBlock = true
			}
		}
		if hasBlock && hasInline {
			return errors.New("block box " + boxtree.ContainerName(b) + " has mixed children")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, len(box.Children))
}

func TestInlineBoxContainsBlocksDirectly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	root := dom.Element("span", nil,
		dom.Text("a"),
		dom.Element("p", nil),
	)
	box := buildBoxes(t, root)
	assert.Equal(t, boxtree.InlineBox, box.Type)
	assert.Equal(t, []boxtree.BoxType{boxtree.InlineBox, boxtree.BlockBox}, types(box))
}

func TestDisplayNoneIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	root := dom.Element("div", nil,
		dom.Element("p", dom.Attributes{"class": "hidden"}, dom.Element("p", nil)),
		dom.Element("span", dom.Attributes{"class": "hidden"}),
		&html.Node{Type: html.CommentNode, Data: "comment"},
	)
	box := buildBoxes(t, root)
	assert.Equal(t, 0, len(box.Children))
	assert.Equal(t, 1, box.Size())
	//
	hidden := dom.Element("div", dom.Attributes{"class": "hidden"})
	_, err := boxtree.BuildLayoutTree(styledtree.BuildStyleTree(hidden, blocks))
	assert.Equal(t, boxtree.ErrNoBoxTreeCreated, err)
	_, err = boxtree.BuildLayoutTree(nil)
	assert.Equal(t, boxtree.ErrDOMRootIsNull, err)
}

func TestDocumentNodeIsBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	doc := dom.Document(dom.Element("div", nil))
	box := buildBoxes(t, doc)
	assert.Equal(t, boxtree.BlockBox, box.Type)
	assert.Equal(t, []boxtree.BoxType{boxtree.BlockBox}, types(box))
}

func TestWalkOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame.box")
	defer teardown()
	//
	root := dom.Element("div", nil,
		dom.Element("p", nil, dom.Text("x")),
		dom.Element("p", nil),
	)
	box := buildBoxes(t, root)
	var names []string
	var depths []int
	err := boxtree.Walk(box, func(b *boxtree.LayoutBox, depth int) error {
		names = append(names, boxtree.ContainerName(b))
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"div", "p", "anon-box", `"x"`, "p"}, names)
	assert.Equal(t, []int{0, 1, 2, 3, 1}, depths)
	//
	stop := errors.New("stop")
	count := 0
	err = boxtree.Walk(box, func(*boxtree.LayoutBox, int) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 2, count)
}
