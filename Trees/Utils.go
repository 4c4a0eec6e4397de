package Trees

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// NilValueError is the panic value when a nil value or a nil tree is passed
// to a method. Op names the method.
type NilValueError struct {
	Op string
}

func (e NilValueError) Error() string {
	return "Trees: nil argument to " + e.Op
}

// InvalidSliceError is the panic value of a safe Build when the given slice
// isn't sorted in ascending order. Prev is at index At-1 and Next is at At.
type InvalidSliceError[T any] struct {
	Prev, Next T
	At         int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice isn't sorted at index %d: %v > %v", e.At, e.Prev, e.Next)
}

// isNil reports whether v is a nil interface, pointer, map, slice, func or chan.
func isNil[T any](v T) bool {
	switch rv := reflect.ValueOf(any(v)); rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// compareOrdered is the comparator used for constraints.Ordered types.
func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// FromGods adapts a gods comparator, such as utils.IntComparator or
// utils.StringComparator, to a typed comparator.
func FromGods[T any](c utils.Comparator) func(a, b T) int {
	return func(a, b T) int {
		return c(a, b)
	}
}

// iterate over a snapshot slice. The returned function behaves as described in Tree.InOrder.
func iterate[T any](s []T) func() (T, bool) {
	i := 0
	return func() (r T, has bool) {
		if i < len(s) {
			r, has = s[i], true
			i++
		}
		return
	}
}
