package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/scapegoat/Trees"
)

func newStatsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [values...]",
		Short: "print size, height and balance of the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTree(cmd, v, args, writeStats[int], writeStats[string])
		},
	}
}

// writeStats prints one "key: value" line per statistic. min and max are
// left out for an empty tree, upper_bound for a plain BSTree.
func writeStats[T any](cmd *cobra.Command, _ *viper.Viper, t Trees.Tree[T]) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "size: %d\n", t.Size())
	fmt.Fprintf(w, "height: %d\n", t.Height())
	fmt.Fprintf(w, "balanced: %t\n", t.IsBalanced())
	if v, ok := t.Minimum(); ok {
		fmt.Fprintf(w, "min: %v\n", v)
	}
	if v, ok := t.Maximum(); ok {
		fmt.Fprintf(w, "max: %v\n", v)
	}
	if sg, ok := t.(*Trees.SGTree[T]); ok {
		fmt.Fprintf(w, "upper_bound: %d\n", sg.UpperBound())
	}
	return nil
}
