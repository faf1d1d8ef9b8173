// Package tree builds the N-ary flame-tree aggregation structure from a
// folded multiset, maintaining inclusive/exclusive counts and subtree
// height incrementally as nodes are inserted.
package tree

import (
	"github.com/theSprog/FlameCrafter/pkg/fold"
	"github.com/theSprog/FlameCrafter/pkg/frame"
)

// Node is one vertex of the flame tree. Frame is nil at the synthetic
// root. Children are keyed by frame identity (hash+equality).
type Node struct {
	Frame    *frame.Frame
	Self     uint64
	Total    uint64
	Height   int
	Parent   *Node
	Children map[uint64][]*Node // bucketed by frame hash, like fold.Multiset
}

func newNode(f *frame.Frame) *Node {
	return &Node{Frame: f, Height: 1, Children: make(map[uint64][]*Node)}
}

// getOrCreateChild returns the existing child keyed by f, or creates and
// links a new one, updating ancestor heights on creation.
func (n *Node) getOrCreateChild(f frame.Frame) *Node {
	h := f.Hash()
	for _, c := range n.Children[h] {
		if c.Frame.Equal(f) {
			return c
		}
	}
	child := newNode(&f)
	child.Parent = n
	n.Children[h] = append(n.Children[h], child)
	n.updateHeightUpward(child)
	return child
}

// updateHeightUpward raises ancestor heights after inserting newNode,
// stopping as soon as an ancestor is already tall enough.
func (n *Node) updateHeightUpward(newNode *Node) {
	expect := newNode.Height + 1
	for cur := n; cur != nil; cur = cur.Parent {
		if expect <= cur.Height {
			break
		}
		cur.Height = expect
		expect = cur.Height + 1
	}
}

// incrementSelf adds count to n's exclusive count and propagates the same
// increment up every ancestor's Total.
func (n *Node) incrementSelf(count uint64) {
	n.Self += count
	for p := n; p != nil; p = p.Parent {
		p.Total += count
	}
}

// Build materialises multiset as a rooted tree: a synthetic root (no
// frame, self=0), with each (frames, count) pair walked/created
// root-to-leaf and folded into the leaf's self count.
func Build(m *fold.Multiset) *Node {
	root := newNode(nil)
	m.ForEach(func(key frame.FramesKey, count uint64) {
		if len(key.Frames) == 0 {
			return
		}
		cur := root
		for _, f := range key.Frames {
			cur = cur.getOrCreateChild(f)
		}
		cur.incrementSelf(count)
	})
	return root
}

// HeatRatio is the node's total as a fraction of its parent's total. It is
// a ratio-based measure, distinct from the depth-based heat used for
// colouring.
func (n *Node) HeatRatio() float64 {
	if n.Parent == nil || n.Parent.Total == 0 {
		return 0
	}
	r := float64(n.Total) / float64(n.Parent.Total)
	if r > 1 {
		r = 1
	}
	return r
}

// Prune removes, recursively, any child whose total/parent.total ratio
// falls below threshold. It does not re-adjust the parent's Total.
func (n *Node) Prune(threshold float64) {
	if n.Total == 0 {
		return
	}
	for h, bucket := range n.Children {
		kept := bucket[:0]
		for _, c := range bucket {
			ratio := float64(c.Total) / float64(n.Total)
			if ratio < threshold {
				continue
			}
			c.Prune(threshold)
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			delete(n.Children, h)
		} else {
			n.Children[h] = kept
		}
	}
}

// ChildSlice returns the node's children flattened out of the hash
// bucketing, in a stable order (by frame name, then kind, then bracket
// flag) so layout and rendering are deterministic.
func (n *Node) ChildSlice() []*Node {
	var out []*Node
	for _, bucket := range n.Children {
		out = append(out, bucket...)
	}
	sortNodes(out)
	return out
}

func sortNodes(nodes []*Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].Frame.Less(*nodes[j-1].Frame); j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}

// Destroy releases a tree using an iterative depth-first walk over an
// explicit stack (stack rather than queue) so destruction is O(1) in
// call-stack depth regardless of how wide the tree is. The walk is
// pre-order, not post-order: each node's children are pushed and its links
// cleared when it is popped, before any of its children are visited.
func Destroy(root *Node) {
	stack := make([]*Node, 0, root.Height)
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, bucket := range n.Children {
			stack = append(stack, bucket...)
		}
		n.Children = nil
		n.Parent = nil
	}
}
