package Trees

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*BSTree[int])(nil)
var _ containers.Container = (*BSTree[int])(nil)

// base holds the binary search tree operations shared by BSTree and SGTree.
// It's embedded unexported so an SGTree can't be modified around its own
// Insert and Remove.
type base[T any] struct {
	root    *Node[T]
	cmp     func(a, b T) int
	nilable bool // whether values need the nil check
}

// BSTree is a plain binary search tree. It never rebalances by itself; only
// Balance changes its shape apart from Insert and Remove. Size isn't cached
// and is computed by counting the nodes.
// The zero value isn't usable, create it with NewBST or NewBSTFunc.
type BSTree[T any] struct {
	base[T]
}

// NewBST returns an empty BSTree ordered by < on T.
func NewBST[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{base[T]{cmp: compareOrdered[T]}}
}

// NewBSTFunc returns an empty BSTree ordered by cmp, which returns a negative
// number when a<b, 0 when a==b, and a positive number when a>b.
func NewBSTFunc[T any](cmp func(a, b T) int) *BSTree[T] {
	return &BSTree[T]{base[T]{cmp: cmp, nilable: true}}
}

func (u *base[T]) check(v T, op string) {
	if u.nilable && isNil(v) {
		panic(NilValueError{op})
	}
}

// insert v as a new leaf without rebalancing. Returns the new node and its depth.
// Time: O(D); Space: O(1)
func (u *base[T]) insert(v T) (*Node[T], int) {
	var p *Node[T]
	d, curPtr := 0, &u.root
	for *curPtr != nil {
		p = *curPtr
		if u.cmp(v, p.v) <= 0 {
			curPtr = &p.l
		} else {
			curPtr = &p.r
		}
		d++
	}
	*curPtr = &Node[T]{v: v, p: p}
	return *curPtr, d
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *base[T]) Insert(v T) {
	u.check(v, "Insert")
	u.insert(v)
}

// replace the subtree at slot by n, whose parent becomes p.
func replace[T any](slot **Node[T], n, p *Node[T]) {
	*slot = n
	if n != nil {
		n.p = p
	}
}

// remove one v from the subtree rooting at *curPtr recursively. curPtr is
// passed by reference. A node with two children takes the value of its
// in-order predecessor, which is then spliced out of the left subtree.
// Time: O(D)
func (u *base[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		replace(curPtr, cur.r, cur.p)
	} else if cur.r == nil {
		replace(curPtr, cur.l, cur.p)
	} else {
		t := &cur.l
		for (*t).r != nil {
			t = &(*t).r
		}
		pred := *t
		cur.v = pred.v
		replace(t, pred.l, pred.p)
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *base[T]) Remove(v T) bool {
	u.check(v, "Remove")
	return u.remove(&u.root, v)
}

// find the first node equal to v on the search path.
func (u *base[T]) find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c == 0 {
			return cur
		} else if c > 0 {
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T]) Has(v T) bool {
	u.check(v, "Has")
	return u.find(v) != nil
}

// Get [Tree.Get]
// Time: O(D); Space: O(1)
func (u *base[T]) Get(v T) (T, bool) {
	u.check(v, "Get")
	if n := u.find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[T]) Predecessor(v T) (T, bool) {
	u.check(v, "Predecessor")
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[T]) Successor(v T) (T, bool) {
	u.check(v, "Successor")
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Size [Tree.Size]. Recursive.
// Time: O(n)
func (u *base[T]) Size() int {
	return u.root.count()
}

// Empty [Tree.Empty]
// Time: O(1); Space: O(1)
func (u *base[T]) Empty() bool {
	return u.root == nil
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *base[T]) Height() int {
	return u.root.height()
}

// Root [Tree.Root]
func (u *base[T]) Root() *Node[T] {
	return u.root
}

// Clear removes all elements.
func (u *base[T]) Clear() {
	u.root = nil
}

// values of the tree in in-order.
func (u *base[T]) values() []T {
	ns := u.root.flatten(nil)
	vs := make([]T, len(ns))
	for i, n := range ns {
		vs[i] = n.v
	}
	return vs
}

// Values of the tree in in-order, for containers.Container.
func (u *base[T]) Values() []interface{} {
	vs := u.values()
	r := make([]interface{}, len(vs))
	for i, v := range vs {
		r[i] = v
	}
	return r
}

func (u *base[T]) String() string {
	return "BSTree\n" + join(u.values())
}

func join[T any](vs []T) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}

// PreOrder [Tree.PreOrder]
// Time: O(n) to take the snapshot; Space: O(n)
func (u *base[T]) PreOrder() func() (T, bool) {
	var s []T
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		s = append(s, cur.v)
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return iterate(s)
}

// InOrder [Tree.InOrder]
// Time: O(n) to take the snapshot; Space: O(n)
func (u *base[T]) InOrder() func() (T, bool) {
	return iterate(u.values())
}

// PostOrder [Tree.PostOrder]. Visits root, right, left and reverses the result.
// Time: O(n) to take the snapshot; Space: O(n)
func (u *base[T]) PostOrder() func() (T, bool) {
	var s []T
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		s = append(s, cur.v)
		if cur.l != nil {
			st.Push(cur.l)
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
	}
	slices.Reverse(s)
	return iterate(s)
}

// balanced is the window test 2^h <= size < 2^(h+1), i.e. h == floor(log2(size)).
func balanced(size, h int) bool {
	return size > 0 && bits.Len(uint(size))-1 == h
}

// IsBalanced [Tree.IsBalanced]
// Time: O(n)
func (u *base[T]) IsBalanced() bool {
	return balanced(u.Size(), u.Height())
}

// rebuild the subtree rooting at n into a perfectly balanced one in place and
// return its new root. The nodes are reused.
// Time: O(size of the subtree)
func (u *base[T]) rebuild(n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	slot, p := n.slot(&u.root), n.p
	*slot = link(n.flatten(nil), p)
	return *slot
}

// Balance [Tree.Balance]
// Time: O(n)
func (u *base[T]) Balance() {
	u.rebuild(u.root)
}

// Equals [Tree.Equals]
func (u *base[T]) Equals(other Tree[T]) bool {
	if isNil(other) {
		panic(NilValueError{"Equals"})
	}
	return u.Size() == other.Size() && u.SameValues(other)
}

// SameValues [Tree.SameValues]
// Two elements are the same when the comparator of u returns 0.
func (u *base[T]) SameValues(other Tree[T]) bool {
	if isNil(other) {
		panic(NilValueError{"SameValues"})
	}
	f, g := u.InOrder(), other.InOrder()
	for {
		a, hasA := f()
		b, hasB := g()
		if hasA != hasB {
			return false
		} else if !hasA {
			return true
		} else if u.cmp(a, b) != 0 {
			return false
		}
	}
}

type bound[T any] struct {
	n, lo, hi *Node[T]
}

// Corrupt [Tree.Corrupt]
// Every value must lie between its closest ancestors on either side and
// every child must point back to its parent.
// Time: O(n); Space: O(D)
func (u *base[T]) Corrupt() bool {
	if u.root == nil {
		return false
	} else if u.root.p != nil {
		return true
	}
	st := arraystack.New()
	st.Push(bound[T]{n: u.root})
	for !st.Empty() {
		top, _ := st.Pop()
		b := top.(bound[T])
		if (b.lo != nil && u.cmp(b.n.v, b.lo.v) < 0) || (b.hi != nil && u.cmp(b.n.v, b.hi.v) > 0) {
			return true
		}
		if l := b.n.l; l != nil {
			if l.p != b.n {
				return true
			}
			st.Push(bound[T]{l, b.lo, b.n})
		}
		if r := b.n.r; r != nil {
			if r.p != b.n {
				return true
			}
			st.Push(bound[T]{r, b.n, b.hi})
		}
	}
	return false
}
