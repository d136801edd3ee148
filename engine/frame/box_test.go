package frame

import (
	"testing"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/dom/style"
	"github.com/npillmayer/flowbox/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxFromEmptyStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	box := BoxFromStyles(nil)
	assert.True(t, box.W.IsAuto())
	assert.True(t, box.H.IsAuto())
	assert.Equal(t, css.SomeDimen(0), box.Padding[Top])
	assert.Equal(t, css.SomeDimen(0), box.BorderWidth[Right])
	assert.Equal(t, css.SomeDimen(0), box.Margins[Left])
}

func TestBoxFromStylesShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	pm := style.NewPropertyMap()
	pm.Set("margin", style.Px(10))
	pm.Set("margin-left", style.Auto())
	pm.Set("border-width", style.Px(2))
	pm.Set("padding-top", style.Percent(5))
	box := BoxFromStyles(pm)
	assert.Equal(t, css.SomeDimen(10), box.Margins[Top])
	assert.Equal(t, css.SomeDimen(10), box.Margins[Right])
	assert.True(t, box.Margins[Left].IsAuto())
	assert.Equal(t, css.SomeDimen(2), box.BorderWidth[Bottom])
	assert.True(t, box.Padding[Top].IsPercent())
	t.Logf(box.DebugString())
}

func TestFixWidthAuto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	box := BoxFromStyles(nil)
	box.Margins[Left] = css.AutoDimen()
	box.Padding[Left] = css.SomeDimen(10)
	err := FixDimensionsFromEnclosingWidth(box, 200)
	require.NoError(t, err)
	assert.Equal(t, css.SomeDimen(190), box.W)
	assert.Equal(t, css.SomeDimen(0), box.Margins[Left])
	assert.Equal(t, css.SomeDimen(0), box.Margins[Right])
}

func TestFixWidthAutoOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	box := BoxFromStyles(nil)
	box.Padding[Left] = css.SomeDimen(60)
	box.Padding[Right] = css.SomeDimen(60)
	err := FixDimensionsFromEnclosingWidth(box, 100)
	require.NoError(t, err)
	assert.Equal(t, css.SomeDimen(0), box.W)
	assert.Equal(t, css.SomeDimen(-20), box.Margins[Right])
}

func TestFixWidthMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	for i, x := range []struct {
		ml, mr css.DimenT
		l, r   dimen.Dimen
	}{
		{css.AutoDimen(), css.AutoDimen(), 50, 50},
		{css.SomeDimen(10), css.SomeDimen(10), 10, 90},
		{css.AutoDimen(), css.SomeDimen(20), 80, 20},
		{css.SomeDimen(30), css.AutoDimen(), 30, 70},
	} {
		box := BoxFromStyles(nil)
		box.W = css.SomeDimen(100)
		box.Margins[Left], box.Margins[Right] = x.ml, x.mr
		err := FixDimensionsFromEnclosingWidth(box, 200)
		require.NoError(t, err)
		assert.Equal(t, css.SomeDimen(100), box.W, "test #%d", i)
		assert.Equal(t, css.SomeDimen(x.l), box.Margins[Left], "test #%d", i)
		assert.Equal(t, css.SomeDimen(x.r), box.Margins[Right], "test #%d", i)
	}
}

func TestFixWidthOverConstrained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	box := BoxFromStyles(nil)
	box.W = css.SomeDimen(300)
	box.Margins[Left], box.Margins[Right] = css.AutoDimen(), css.AutoDimen()
	err := FixDimensionsFromEnclosingWidth(box, 200)
	require.NoError(t, err)
	assert.Equal(t, css.SomeDimen(0), box.Margins[Left])
	assert.Equal(t, css.SomeDimen(-100), box.Margins[Right])
}

func TestFixPercentages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	box := BoxFromStyles(nil)
	box.W = css.PercentDimen(50)
	box.H = css.PercentDimen(50)
	box.Padding[Left] = css.PercentDimen(10)
	box.Margins[Top] = css.PercentDimen(5)
	box.BorderWidth[Left] = css.PercentDimen(10)
	err := FixDimensionsFromEnclosingWidth(box, 200)
	require.NoError(t, err)
	assert.Equal(t, css.SomeDimen(100), box.W)
	assert.True(t, box.H.IsAuto())
	assert.Equal(t, css.SomeDimen(20), box.Padding[Left])
	assert.Equal(t, css.SomeDimen(10), box.Margins[Top])
	assert.Equal(t, css.SomeDimen(0), box.BorderWidth[Left])
	assert.Equal(t, css.SomeDimen(80), box.Margins[Right])
}

func TestExpandedBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	e := r.ExpandedBy(Edges(15, 10, 20, 5))
	assert.Equal(t, Rect{X: 5, Y: 5, W: 45, H: 75}, e)
}

func TestDimensionsBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	d := Dimensions{
		Content: Rect{X: 20, Y: 20, W: 100, H: 50},
		Padding: Edges(5, 5, 5, 5),
		Border:  Edges(1, 1, 1, 1),
		Margin:  Edges(10, 0, 10, 14),
	}
	assert.Equal(t, Rect{X: 15, Y: 15, W: 110, H: 60}, d.PaddingBox())
	assert.Equal(t, Rect{X: 14, Y: 14, W: 112, H: 62}, d.BorderBox())
	assert.Equal(t, Rect{X: 0, Y: 4, W: 126, H: 82}, d.MarginBox())
	t.Logf(d.DebugString())
}

func TestDisplayModeOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	assert.Equal(t, InlineMode, DisplayModeOf(nil))
	pm := style.NewPropertyMap()
	pm.Set("display", style.Keyword("block"))
	assert.Equal(t, BlockMode, DisplayModeOf(pm))
	pm.Set("display", style.Keyword("none"))
	assert.Equal(t, DisplayNone, DisplayModeOf(pm))
	pm.Set("display", style.Keyword("flex"))
	assert.Equal(t, InlineMode, DisplayModeOf(pm))
	assert.Equal(t, "block", BlockMode.String())
}

func TestStylingOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	pm := style.NewPropertyMap()
	pm.Set("background-color", style.ColorOf(style.Color{R: 0xff, A: 0xff}))
	st := StylingOf(pm)
	assert.Equal(t, style.Color{A: 0xff}, st.Colors.Foreground)
	assert.Equal(t, style.Color{R: 0xff, A: 0xff}, st.Colors.Background)
	assert.Nil(t, st.Colors.Border[Top])
}
