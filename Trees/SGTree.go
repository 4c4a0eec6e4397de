package Trees

import (
	"math"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

var _ Tree[int] = (*SGTree[int])(nil)
var _ containers.Container = (*SGTree[int])(nil)

// log32 is log(3/2); a tree with upper bound q may have height log(q)/log32.
var log32 = math.Log(1.5)

// SGTree is a scapegoat tree: a binary search tree that keeps no balance
// information in its nodes. It keeps height D <= log_{3/2}(q), where q is a
// loose upper bound of the size that is incremented on every Insert and only
// reset to the size when the whole tree is rebuilt.
// An Insert that makes the new node too deep climbs towards the root until
// it finds an ancestor holding more than 2/3 of its parent's subtree; that
// parent is the scapegoat and its subtree is rebuilt perfectly balanced.
// A Remove that leaves fewer than q/2 elements rebuilds the whole tree.
// Both are amortized O(log n).
// Unlike BSTree, the size is tracked so Size is O(1).
// The zero value isn't usable, create it with NewSGTree, NewSGTreeFunc,
// NewSGTreeGods or one of the Build functions.
type SGTree[T any] struct {
	base[T]
	n, upperBound int
}

// NewSGTree returns an empty SGTree ordered by < on T.
func NewSGTree[T constraints.Ordered]() *SGTree[T] {
	return &SGTree[T]{base: base[T]{cmp: compareOrdered[T]}}
}

// NewSGTreeFunc returns an empty SGTree ordered by cmp. See NewBSTFunc.
func NewSGTreeFunc[T any](cmp func(a, b T) int) *SGTree[T] {
	return &SGTree[T]{base: base[T]{cmp: cmp, nilable: true}}
}

// NewSGTreeGods returns an empty SGTree ordered by a gods comparator.
func NewSGTreeGods[T any](c utils.Comparator) *SGTree[T] {
	return NewSGTreeFunc(FromGods[T](c))
}

// BuildSGTree builds a perfectly balanced SGTree from the given sorted slice.
// This is faster than repeatedly calling Insert.
// The given slice must be sorted in ascending order; repeated elements are allowed.
// If safe==true, this function will check if the condition is met and panic with InvalidSliceError
// if the condition is broken. Otherwise, it is up to the user to ensure the condition is met
// (otherwise the tree will be corrupt). The slice isn't retained.
// Time: O(n).
func BuildSGTree[T constraints.Ordered](sli []T, safe bool) *SGTree[T] {
	u := NewSGTree[T]()
	u.build(sli, safe)
	return u
}

// BuildSGTreeFunc is the NewSGTreeFunc equivalence of BuildSGTree.
func BuildSGTreeFunc[T any](sli []T, cmp func(a, b T) int, safe bool) *SGTree[T] {
	u := NewSGTreeFunc(cmp)
	u.build(sli, safe)
	return u
}

func (u *SGTree[T]) build(sli []T, safe bool) {
	ns := make([]*Node[T], len(sli))
	for i, v := range sli {
		u.check(v, "Build")
		if safe && i > 0 && u.cmp(sli[i-1], v) > 0 {
			panic(InvalidSliceError[T]{sli[i-1], v, i})
		}
		ns[i] = &Node[T]{v: v}
	}
	u.root = link(ns, nil)
	u.n, u.upperBound = len(sli), len(sli)
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *SGTree[T]) Size() int {
	return u.n
}

// UpperBound is the loose upper bound of Size used for the height limit.
func (u *SGTree[T]) UpperBound() int {
	return u.upperBound
}

// Insert [Tree.Insert]
// Time: amortized O(log n)
func (u *SGTree[T]) Insert(v T) {
	u.check(v, "Insert")
	cur, d := u.insert(v)
	u.n++
	u.upperBound++
	// the height was within the limit before, so only the new node can break it.
	if float64(d) <= math.Log(float64(u.upperBound))/log32 {
		return
	}
	// climb while cur holds at most 2/3 of its parent's subtree.
	for sz := 1; cur.p != nil; cur = cur.p {
		sibling := cur.p.l
		if sibling == cur {
			sibling = cur.p.r
		}
		psz := sz + 1 + sibling.count()
		if 3*sz > 2*psz {
			break
		}
		sz = psz
	}
	if cur.p != nil {
		cur = cur.p
	}
	u.rebuild(cur)
}

// Remove [Tree.Remove]. Recursive.
// Time: amortized O(log n)
func (u *SGTree[T]) Remove(v T) bool {
	if !u.base.Remove(v) {
		return false
	}
	if u.n--; 2*u.n < u.upperBound {
		u.Balance()
	}
	return true
}

// Balance [Tree.Balance]. Also resets the upper bound to Size.
// Time: O(n)
func (u *SGTree[T]) Balance() {
	u.rebuild(u.root)
	u.upperBound = u.n
}

// Clear removes all elements.
func (u *SGTree[T]) Clear() {
	u.root = nil
	u.n, u.upperBound = 0, 0
}

// IsBalanced [Tree.IsBalanced]
// Time: O(n)
func (u *SGTree[T]) IsBalanced() bool {
	return balanced(u.n, u.Height())
}

// Equals [Tree.Equals]
func (u *SGTree[T]) Equals(other Tree[T]) bool {
	if isNil(other) {
		panic(NilValueError{"Equals"})
	}
	return u.n == other.Size() && u.SameValues(other)
}

func (u *SGTree[T]) String() string {
	return "SGTree\n" + join(u.values())
}
