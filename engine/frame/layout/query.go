package layout

import (
	"github.com/npillmayer/flowbox/engine/dom"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
)

// Query returns the boxes for all elements below root matching a CSS
// selector, in document order. Matched elements without a box are skipped.
func Query(root *boxtree.LayoutBox, selector string) ([]*boxtree.LayoutBox, error) {
	h := root.HTMLNode()
	if h == nil {
		return nil, nil
	}
	nodes, err := dom.QueryAll(h, selector)
	if err != nil {
		return nil, err
	}
	idx := IndexBoxes(root)
	var boxes []*boxtree.LayoutBox
	for _, n := range nodes {
		if box, ok := idx.Get(n); ok {
			boxes = append(boxes, box)
		}
	}
	tracer().Debugf("query %q matched %d nodes, %d boxes", selector, len(nodes), len(boxes))
	return boxes, nil
}
