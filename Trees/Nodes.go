package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Node in a BSTree or SGTree. l and r are owned by the node; p is a back
// reference to the parent and is nil for the root or a detached node.
// The zero value is a single node holding the zero value of T.
type Node[T any] struct {
	v       T
	l, r, p *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Parent of n, nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

// slot returns the link in n's parent that points to n, or root if n is the root.
func (n *Node[T]) slot(root **Node[T]) **Node[T] {
	if n.p == nil {
		return root
	} else if n.p.l == n {
		return &n.p.l
	}
	return &n.p.r
}

// count the nodes in the subtree rooting at n. Recursive.
// Time: O(size)
func (n *Node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.l.count() + n.r.count()
}

type frame[T any] struct {
	n *Node[T]
	d int
}

// height of the subtree rooting at n, -1 if n is nil. Uses an explicit stack.
// Time: O(size); Space: O(height)
func (n *Node[T]) height() int {
	h := -1
	if n == nil {
		return h
	}
	st := arraystack.New()
	st.Push(frame[T]{n, 0})
	for !st.Empty() {
		top, _ := st.Pop()
		f := top.(frame[T])
		if f.d > h {
			h = f.d
		}
		if f.n.l != nil {
			st.Push(frame[T]{f.n.l, f.d + 1})
		}
		if f.n.r != nil {
			st.Push(frame[T]{f.n.r, f.d + 1})
		}
	}
	return h
}

// flatten the subtree rooting at n into its nodes in in-order.
// Time: O(size); Space: O(height)
func (n *Node[T]) flatten(ns []*Node[T]) []*Node[T] {
	st := arraystack.New()
	for cur := n; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		ns = append(ns, cur)
		for c := cur.r; c != nil; c = c.l {
			st.Push(c)
		}
	}
	return ns
}

// link the sorted nodes ns into a perfectly balanced subtree whose root's
// parent is p. The median (low+high)/2 becomes the root, so with two nodes
// the lower one is the root and the higher one its right child.
// Returns the new subtree root, nil if ns is empty.
// Time: O(len(ns)); Space: O(log(len(ns)))
func link[T any](ns []*Node[T], p *Node[T]) *Node[T] {
	if len(ns) == 0 {
		return nil
	}
	mid := (len(ns) - 1) >> 1
	m := ns[mid]
	m.p = p
	m.l, m.r = link(ns[:mid], m), link(ns[mid+1:], m)
	return m
}
