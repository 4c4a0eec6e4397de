package Trees

import (
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 14

func BenchmarkSGTree_Insert(b *testing.B) {
	var t *SGTree[int]
	for i := 0; i < b.N; i++ {
		t = NewSGTree[int]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkSGTree_InsertSorted(b *testing.B) {
	var t *SGTree[int]
	for i := 0; i < b.N; i++ {
		t = NewSGTree[int]()
		for j := range bSize {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

func BenchmarkSGTree_Delete(b *testing.B) {
	all := make([]int, bSize)
	for i := range all {
		all[i] = i
	}
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := BuildSGTree(all, false)
		b.StartTimer()
		for j := range bSize {
			t.Remove(j)
		}
	}
}

func BenchmarkSGTree_All(b *testing.B) {
	var t *SGTree[int]
	for i := 0; i < b.N; i++ {
		t = NewSGTree[int]()
		for _, j := range rand.Perm(bSize / 2) {
			t.Insert(j)
		}
		for j, k := range rand.Perm(bSize / 2) {
			if k&1 == 1 {
				t.Remove(j)
			}
		}
		for _, j := range rand.Perm(bSize / 2) {
			t.Insert(j + bSize)
		}
	}
	b.Log(t.Height())
}

func BenchmarkBSTree_Insert(b *testing.B) {
	var t *BSTree[int]
	for i := 0; i < b.N; i++ {
		t = NewBST[int]()
		for _, j := range rand.Perm(bSize) {
			t.Insert(j)
		}
	}
	b.Log(t.Height())
}

// baselines with the other ordered containers.

func BenchmarkRedBlack_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := rbt.NewWithIntComparator()
		for _, j := range rand.Perm(bSize) {
			t.Put(j, nil)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := btree.NewG[int](32, func(a, b int) bool { return a < b })
		for _, j := range rand.Perm(bSize) {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, j := range rand.Perm(bSize) {
			t.InsertNoReplace(llrb.Int(j))
		}
	}
}
