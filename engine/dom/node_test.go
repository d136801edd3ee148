package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestElementConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.dom")
	defer teardown()
	//
	div := Element("DIV", Attributes{"id": "main", "class": "a  b"},
		Text("Hello"),
		Element("p", nil),
	)
	assert.Equal(t, "div", TagName(div))
	assert.Equal(t, "main", ID(div))
	assert.Equal(t, []string{"a", "b"}, Classes(div))
	assert.True(t, HasClass(div, "b"))
	assert.False(t, HasClass(div, "c"))
	kids := Children(div)
	require.Len(t, kids, 2)
	assert.True(t, IsText(kids[0]))
	assert.Equal(t, "#text", NodeName(kids[0]))
	assert.Equal(t, "p", NodeName(kids[1]))
	assert.Equal(t, div, kids[1].Parent)
	assert.Equal(t, "class", div.Attr[0].Key, "attributes should be sorted by key")
}

func TestDocumentElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.dom")
	defer teardown()
	//
	root := Element("html", nil)
	doc := Document(root)
	assert.Equal(t, html.DocumentNode, doc.Type)
	assert.Equal(t, root, DocumentElement(doc))
	assert.Equal(t, root, DocumentElement(root))
	assert.Nil(t, DocumentElement(Document(nil)))
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.dom")
	defer teardown()
	//
	p := Element("p", nil, Text("Hello "), Element("b", nil, Text("World")), Text("!"))
	assert.Equal(t, "Hello World!", InnerText(p))
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.dom")
	defer teardown()
	//
	root := Element("div", Attributes{"class": "a"},
		Element("p", Attributes{"id": "x"}),
		Element("p", Attributes{"class": "b"}),
	)
	n, err := Query(root, "p.b")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.True(t, HasClass(n, "b"))
	all, err := QueryAll(root, "p")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	n, err = Query(root, ".a")
	require.NoError(t, err)
	assert.Equal(t, root, n)
	_, err = Query(root, "p[")
	assert.Error(t, err)
}
