package boxtree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Walk visits the boxes of a layout tree in pre-order (document order),
// calling f with each box and its depth. The root has depth 0.
// Walk stops at the first error returned by f and returns it.
func Walk(root *LayoutBox, f func(box *LayoutBox, depth int) error) error {
	if root == nil {
		return nil
	}
	type item struct {
		box   *LayoutBox
		depth int
	}
	stack := arraystack.New()
	stack.Push(item{root, 0})
	for !stack.Empty() {
		top, _ := stack.Pop()
		it := top.(item)
		if err := f(it.box, it.depth); err != nil {
			return err
		}
		for i := len(it.box.Children) - 1; i >= 0; i-- {
			stack.Push(item{it.box.Children[i], it.depth + 1})
		}
	}
	return nil
}
