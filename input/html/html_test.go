package html

import (
	"testing"

	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var minihtml = `
<html><head>
<style>
  p { border-color: red; }
</style>
</head><body>
  <p>The quick brown fox jumps over the lazy dog.</p>
  <style>.x { width: 10px }</style>
</body>
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.input")
	defer teardown()
	//
	doc, err := ParseString(minihtml)
	require.NoError(t, err)
	root := doc.DocumentElement()
	require.NotNil(t, root)
	assert.Equal(t, "html", dom.TagName(root))
	require.Equal(t, 2, len(doc.Styles))
	assert.Contains(t, doc.Styles[0], "border-color: red")
	assert.Contains(t, doc.StyleText(), ".x { width: 10px }")
	p, err := dom.Query(root, "p")
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox jumps over the lazy dog.", dom.InnerText(p))
}

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.input")
	defer teardown()
	//
	doc, err := ParseString("<div>hello")
	require.NoError(t, err)
	assert.Equal(t, 0, len(doc.Styles))
	assert.Equal(t, "html", dom.TagName(doc.DocumentElement()))
}
