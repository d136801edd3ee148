package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/styledtree"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/net/html"
)

// --- Test Suite Preparation ------------------------------------------------

type LayoutTestEnviron struct {
	suite.Suite
	blocks []*style.Rule // display:block for div and p
}

// listen for 'go test' command --> run test methods
func TestLayoutFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	suite.Run(t, new(LayoutTestEnviron))
}

// run once, before test suite methods
func (env *LayoutTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("flowbox.frame").SetTraceLevel(tracing.LevelError)
	env.blocks = []*style.Rule{
		style.NewRule(tag("div"), "display", style.Keyword("block")),
		style.NewRule(tag("p"), "display", style.Keyword("block")),
	}
}

func tag(t string) style.SimpleSelector {
	return style.SimpleSelector{Tag: t}
}

func cls(c string) style.SimpleSelector {
	return style.SimpleSelector{Classes: []string{c}}
}

// layoutOf builds the styled tree and the layout tree for root and lays it
// out within a viewport of width w.
func (env *LayoutTestEnviron) layoutOf(root *html.Node, w dimen.Dimen, rules ...*style.Rule) *boxtree.LayoutBox {
	all := append(append([]*style.Rule{}, env.blocks...), rules...)
	sheet := style.NewStylesheet(all...)
	styled := styledtree.BuildStyleTree(root, sheet)
	box, err := LayoutTree(styled, InitialContainingBlock(w))
	env.Require().NoError(err)
	env.Require().NotNil(box)
	return box
}

func dimensionsOf(root *boxtree.LayoutBox) []frame.Dimensions {
	var dims []frame.Dimensions
	boxtree.Walk(root, func(box *boxtree.LayoutBox, _ int) error {
		dims = append(dims, box.Dimensions)
		return nil
	})
	return dims
}

// checkWidths checks the horizontal box equation for box and its descendants.
func (env *LayoutTestEnviron) checkWidths(box *boxtree.LayoutBox, cbWidth dimen.Dimen) {
	d := box.Dimensions
	sum := d.Margin.Horizontal() + d.Border.Horizontal() + d.Padding.Horizontal() + d.Content.W
	env.InDelta(float64(cbWidth), float64(sum), 1e-9, "box %s", box)
	for _, ch := range box.Children {
		env.checkWidths(ch, d.Content.W)
	}
}

// --- Tests -----------------------------------------------------------------

func (env *LayoutTestEnviron) TestAutoWidthAbsorbsSlack() {
	inner := dom.Element("div", dom.Attributes{"class": "b"})
	root := dom.Element("div", dom.Attributes{"class": "a"}, inner)
	box := env.layoutOf(root, 200,
		style.NewRule(cls("a"), "width", style.Px(200)),
		style.NewRule(cls("b"), "width", style.Auto(),
			"margin-left", style.Auto(), "margin-right", style.Auto()),
	)
	env.Equal(dimen.Dimen(200), box.Dimensions.Content.W)
	env.Require().Equal(1, len(box.Children))
	b := box.Children[0]
	env.Equal(inner, b.HTMLNode())
	env.Equal(dimen.Dimen(200), b.Dimensions.Content.W)
	env.Equal(box.Dimensions.Content.X, b.Dimensions.Content.X)
	env.Equal(frame.EdgeSizes{}, b.Dimensions.Margin)
}

func (env *LayoutTestEnviron) TestSiblingsStackVertically() {
	root := dom.Element("div", nil,
		dom.Element("p", nil), dom.Element("p", nil), dom.Element("p", nil),
	)
	box := env.layoutOf(root, 400, style.NewRule(tag("p"), "height", style.Px(50)))
	env.Require().Equal(3, len(box.Children))
	for i, y := range []dimen.Dimen{0, 50, 100} {
		env.Equal(y, box.Children[i].Dimensions.Content.Y, "y of child #%d", i)
		env.Equal(dimen.Dimen(400), box.Children[i].Dimensions.Content.W)
	}
	env.Equal(dimen.Dimen(150), box.Dimensions.Content.H)
}

func (env *LayoutTestEnviron) TestVerticalMarginsAdvanceCursor() {
	root := dom.Element("div", nil,
		dom.Element("p", nil), dom.Element("p", nil), dom.Element("p", nil),
	)
	box := env.layoutOf(root, 400, style.NewRule(tag("p"),
		"height", style.Px(50),
		"margin", style.Px(10),
	))
	env.Equal(dimen.Dimen(10), box.Children[0].Dimensions.Content.Y)
	for i := 0; i+1 < len(box.Children); i++ {
		d := box.Children[i].Dimensions
		next := box.Children[i+1].Dimensions
		env.Equal(d.MarginBox().Y+d.MarginBox().H, next.MarginBox().Y)
	}
	env.Equal(dimen.Dimen(210), box.Dimensions.Content.H)
	env.Equal(dimen.Dimen(10), box.Children[0].Dimensions.Content.X)
	env.Equal(dimen.Dimen(380), box.Children[0].Dimensions.Content.W)
}

func (env *LayoutTestEnviron) TestDisplayNoneChildren() {
	root := dom.Element("div", nil,
		dom.Element("p", dom.Attributes{"class": "hidden"}),
		dom.Element("p", dom.Attributes{"class": "hidden"}),
	)
	hidden := style.NewRule(cls("hidden"), "display", style.Keyword("none"), "height", style.Px(50))
	box := env.layoutOf(root, 300, hidden)
	env.Equal(0, len(box.Children))
	env.Equal(dimen.Dimen(0), box.Dimensions.Content.H)
	//
	box = env.layoutOf(root, 300, hidden, style.NewRule(tag("div"), "height", style.Px(30)))
	env.Equal(0, len(box.Children))
	env.Equal(dimen.Dimen(30), box.Dimensions.Content.H)
}

func (env *LayoutTestEnviron) TestNestedEdges() {
	root := dom.Element("div", nil, dom.Element("p", nil))
	box := env.layoutOf(root, 300,
		style.NewRule(tag("div"), "padding", style.Px(10), "border-width", style.Px(5)),
		style.NewRule(tag("p"), "height", style.Px(20)),
	)
	d := box.Dimensions
	env.Equal(frame.Rect{X: 15, Y: 15, W: 270, H: 20}, d.Content)
	env.Equal(frame.Rect{X: 0, Y: 0, W: 300, H: 50}, d.MarginBox())
	p := box.Children[0].Dimensions
	env.Equal(frame.Rect{X: 15, Y: 15, W: 270, H: 20}, p.Content)
}

func (env *LayoutTestEnviron) TestPercentages() {
	root := dom.Element("div", nil, dom.Element("p", nil))
	box := env.layoutOf(root, 200,
		style.NewRule(tag("p"),
			"width", style.Percent(50),
			"margin-left", style.Percent(10),
			"padding-top", style.Percent(5),
			"height", style.Percent(50),
		),
	)
	p := box.Children[0].Dimensions
	env.Equal(dimen.Dimen(100), p.Content.W)
	env.Equal(dimen.Dimen(20), p.Content.X)
	env.Equal(dimen.Dimen(80), p.Margin[frame.Right])
	env.Equal(dimen.Dimen(10), p.Padding[frame.Top])
	env.Equal(dimen.Dimen(10), p.Content.Y)
	env.Equal(dimen.Dimen(0), p.Content.H, "percentage heights act as auto")
}

func (env *LayoutTestEnviron) TestOverConstrainedWidth() {
	root := dom.Element("div", nil, dom.Element("p", nil))
	box := env.layoutOf(root, 200,
		style.NewRule(tag("p"),
			"width", style.Px(100),
			"margin-left", style.Px(10),
			"margin-right", style.Px(10),
			"padding-left", style.Px(5),
			"border-left-width", style.Px(1),
		),
	)
	p := box.Children[0].Dimensions
	env.Equal(dimen.Dimen(100), p.Content.W)
	env.Equal(dimen.Dimen(16), p.Content.X)
	env.Equal(dimen.Dimen(84), p.Margin[frame.Right])
}

func (env *LayoutTestEnviron) TestWidthEquationHolds() {
	root := dom.Element("div", nil,
		dom.Element("p", dom.Attributes{"class": "narrow"}, dom.Text("x")),
		dom.Element("p", dom.Attributes{"class": "wide"}),
		dom.Element("span", nil, dom.Element("p", nil)),
		dom.Text("tail"),
	)
	box := env.layoutOf(root, 640,
		style.NewRule(tag("div"), "padding", style.Px(7), "border-width", style.Px(3)),
		style.NewRule(cls("narrow"), "width", style.Px(120), "margin-left", style.Auto(),
			"margin-right", style.Auto()),
		style.NewRule(cls("wide"), "width", style.Px(900), "margin-left", style.Px(15)),
		style.NewRule(tag("span"), "margin-left", style.Percent(25), "padding", style.Percent(2)),
	)
	env.checkWidths(box, 640)
	narrow := box.Children[0].Dimensions
	env.Equal(narrow.Margin[frame.Left], narrow.Margin[frame.Right])
	wide := box.Children[1].Dimensions
	env.True(wide.Margin[frame.Right] < 0, "over-constrained box should have negative right margin")
}

func (env *LayoutTestEnviron) TestLayoutIsIdempotent() {
	root := dom.Element("div", nil,
		dom.Element("p", nil, dom.Text("a")),
		dom.Element("span", nil, dom.Text("b")),
		dom.Element("p", nil),
	)
	box := env.layoutOf(root, 500,
		style.NewRule(tag("p"), "height", style.Px(20), "margin", style.Px(4)),
	)
	first := dimensionsOf(box)
	Layout(box, InitialContainingBlock(500))
	second := dimensionsOf(box)
	if diff := cmp.Diff(first, second); diff != "" {
		env.Fail("layout is not idempotent", diff)
	}
}

func (env *LayoutTestEnviron) TestViewportHeightIsIgnored() {
	root := dom.Element("div", nil)
	styled := styledtree.BuildStyleTree(root, style.NewStylesheet(env.blocks...))
	viewport := InitialContainingBlock(100)
	viewport.Content.H = 500
	box, err := LayoutTree(styled, viewport)
	env.Require().NoError(err)
	env.Equal(dimen.Dimen(0), box.Dimensions.Content.Y)
}

func (env *LayoutTestEnviron) TestAnonymousBoxesAreLaidOut() {
	root := dom.Element("div", nil, dom.Text("a"), dom.Element("p", nil))
	box := env.layoutOf(root, 120, style.NewRule(tag("p"), "height", style.Px(10)))
	env.Require().Equal(2, len(box.Children))
	anon := box.Children[0]
	env.Equal(boxtree.AnonymousBlockBox, anon.Type)
	env.Equal(dimen.Dimen(120), anon.Dimensions.Content.W)
	env.Equal(dimen.Dimen(0), box.Children[1].Dimensions.Content.Y)
}

func (env *LayoutTestEnviron) TestQuery() {
	root := dom.Element("div", nil,
		dom.Element("p", dom.Attributes{"id": "first"}),
		dom.Element("p", dom.Attributes{"class": "hidden"}),
		dom.Element("p", nil),
	)
	box := env.layoutOf(root, 100,
		style.NewRule(tag("p"), "height", style.Px(25)),
		style.NewRule(cls("hidden"), "display", style.Keyword("none")),
	)
	boxes, err := Query(box, "p")
	env.Require().NoError(err)
	env.Require().Equal(2, len(boxes))
	env.Equal(dimen.Dimen(0), boxes[0].Dimensions.Content.Y)
	env.Equal(dimen.Dimen(25), boxes[1].Dimensions.Content.Y)
	boxes, err = Query(box, "#first")
	env.Require().NoError(err)
	env.Equal(1, len(boxes))
	_, err = Query(box, "p[")
	env.Error(err)
	env.Equal(3, IndexBoxes(box).Length())
}

func (env *LayoutTestEnviron) TestBoxWithoutTypeIsNotLaidOut() {
	box := boxtree.NewBox(boxtree.NoBox, nil)
	child := boxtree.NewBox(boxtree.AnonymousBlockBox, nil)
	box.AddChild(child)
	Layout(box, InitialContainingBlock(300))
	env.Equal(frame.Dimensions{}, box.Dimensions)
	env.Equal(frame.Dimensions{}, child.Dimensions, "children of untyped boxes stay untouched")
	Layout(nil, InitialContainingBlock(300))
}
