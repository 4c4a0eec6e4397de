package dot

import (
	"strings"
	"testing"

	"github.com/g-m-twostay/scapegoat/Trees"
)

func TestString_Empty(t *testing.T) {
	if s := String(Trees.NewSGTree[int]().Root()); s != "digraph G { \ngraph [ordering=\"out\"]; \n};" {
		t.Errorf("wrong empty graph %q", s)
	}
}

func TestString(t *testing.T) {
	tree := Trees.NewBST[int]()
	for _, v := range []int{2, 1, 3, 4} {
		tree.Insert(v)
	}
	want := strings.Join([]string{
		"digraph G { ",
		"graph [ordering=\"out\"]; ",
		`"2" -> "1";`,
		`"2" -> "3";`,
		"node0 [shape=point];",
		`"1" -> node0;`,
		"node1 [shape=point];",
		`"1" -> node1;`,
		"node2 [shape=point];",
		`"3" -> node2;`,
		`"3" -> "4";`,
		"node3 [shape=point];",
		`"4" -> node3;`,
		"node4 [shape=point];",
		`"4" -> node4;`,
		"};",
	}, "\n")
	if s := String(tree.Root()); s != want {
		t.Errorf("wrong graph:\n%s\nwant:\n%s", s, want)
	}
}

func TestWrite_Strings(t *testing.T) {
	tree := Trees.NewSGTree[string]()
	tree.Insert("say \"hi\"")
	var sb strings.Builder
	if err := Write(&sb, tree.Root()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"say \"hi\"" -> node0;`) {
		t.Errorf("label isn't quoted: %s", sb.String())
	}
	if strings.Count(sb.String(), "[shape=point]") != 2 {
		t.Error("a leaf should have two sinks")
	}
}
