package layout

import (
	"sync"

	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"golang.org/x/net/html"
)

// BoxIndex associates DOM nodes with the layout boxes created for them.
// Anonymous boxes are not indexed.
type BoxIndex struct {
	sync.RWMutex
	m map[*html.Node]*boxtree.LayoutBox
}

// IndexBoxes creates an index for the boxes of a layout tree.
func IndexBoxes(root *boxtree.LayoutBox) *BoxIndex {
	idx := &BoxIndex{
		m: make(map[*html.Node]*boxtree.LayoutBox),
	}
	boxtree.Walk(root, func(box *boxtree.LayoutBox, _ int) error {
		if h := box.HTMLNode(); h != nil {
			idx.Put(h, box)
		}
		return nil
	})
	return idx
}

// Put associates a DOM node with a box.
func (idx *BoxIndex) Put(h *html.Node, box *boxtree.LayoutBox) {
	idx.Lock()
	defer idx.Unlock()
	idx.m[h] = box
}

// Get returns the box for a DOM node, if any. Nodes with `display:none`
// and their descendants do not have a box.
func (idx *BoxIndex) Get(h *html.Node) (*boxtree.LayoutBox, bool) {
	idx.RLock()
	defer idx.RUnlock()
	box, ok := idx.m[h]
	return box, ok
}

// Length returns the number of indexed boxes.
func (idx *BoxIndex) Length() int {
	idx.RLock()
	defer idx.RUnlock()
	return len(idx.m)
}
