package Trees

// Tree represents an ordered multiset implemented as a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Equal values are kept: Insert places a value equal to one already in the
// tree in the left subtree of the equal value it meets first. Rebuilds keep
// the in-order sequence, so they may leave equal values on either side.
// Methods that take a value panic with NilValueError if the value is nil
// (only possible for pointer, interface, map, slice, func and chan types).
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree.
	Insert(v T)
	//Remove one copy of v from the Tree. Returning true if successful,
	//false if v isn't in the Tree.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Get the stored element equal to v.
	Get(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() int
	//Empty is true when Size is 0.
	Empty() bool
	//Height of the tree; -1 when empty, 0 for a single node.
	Height() int
	//PreOrder, InOrder and PostOrder return a closure function f acting like
	//an iterator over a snapshot of the tree taken when called.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	PreOrder() func() (T, bool)
	InOrder() func() (T, bool)
	PostOrder() func() (T, bool)
	//IsBalanced reports whether 2^Height() <= Size() < 2^(Height()+1).
	//An empty tree isn't balanced.
	IsBalanced() bool
	//Balance rebuilds the whole tree into a perfectly balanced one.
	Balance()
	//Equals is true when other has the same size and SameValues.
	Equals(other Tree[T]) bool
	//SameValues compares the in-order sequences of both trees element by element.
	SameValues(other Tree[T]) bool
	//Root of the tree for read only access. nil when empty.
	Root() *Node[T]
	//Corrupt returns whether the tree has corrupt structures: the BST
	//ordering is violated or some parent link doesn't match its child link.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
