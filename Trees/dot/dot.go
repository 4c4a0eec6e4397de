// Package dot renders a tree from the Trees package as a graphviz digraph.
// Nodes are labelled by fmt.Sprint of their value, so equal values share one
// graph node. A missing child is drawn as an edge to a point shaped sink.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/g-m-twostay/scapegoat/Trees"
)

const (
	header = "digraph G { \ngraph [ordering=\"out\"]; \n"
	footer = "};"
)

func label[T any](n *Trees.Node[T]) string {
	return fmt.Sprintf("%q", fmt.Sprint(n.Value()))
}

// Write the digraph of the tree rooting at root to w in level order.
// A nil root writes an empty graph.
func Write[T any](w io.Writer, root *Trees.Node[T]) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	sinks := 0
	edge := func(from string, to *Trees.Node[T]) {
		if to != nil {
			fmt.Fprintf(bw, "%s -> %s;\n", from, label(to))
		} else {
			fmt.Fprintf(bw, "node%d [shape=point];\n%s -> node%d;\n", sinks, from, sinks)
			sinks++
		}
	}
	q := linkedlistqueue.New()
	if root != nil {
		q.Enqueue(root)
	}
	for !q.Empty() {
		v, _ := q.Dequeue()
		cur := v.(*Trees.Node[T])
		from := label(cur)
		edge(from, cur.Left())
		edge(from, cur.Right())
		if cur.Left() != nil {
			q.Enqueue(cur.Left())
		}
		if cur.Right() != nil {
			q.Enqueue(cur.Right())
		}
	}
	bw.WriteString(footer)
	return bw.Flush()
}

// String is Write into a string.
func String[T any](root *Trees.Node[T]) string {
	var sb strings.Builder
	Write(&sb, root)
	return sb.String()
}
