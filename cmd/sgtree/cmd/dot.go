package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/scapegoat/Trees"
	"github.com/g-m-twostay/scapegoat/Trees/dot"
)

func newDotCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "dot [values...]",
		Short: "print the tree as a graphviz digraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTree(cmd, v, args, writeDot[int], writeDot[string])
		},
	}
	c.Flags().String(flagOutput, "", "write the graph to this file instead of stdout")
	_ = v.BindPFlag(flagOutput, c.Flags().Lookup(flagOutput))
	return c
}

func writeDot[T any](cmd *cobra.Command, v *viper.Viper, t Trees.Tree[T]) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	path := v.GetString(flagOutput)
	if path != "" {
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return errors.Wrapf(err, "cannot create output %s", path)
		}
		defer closeOutput(f, path, &err)
		w = f
	}
	if err = dot.Write(w, t.Root()); err != nil {
		return errors.Wrap(err, "cannot write graph")
	}
	if path != "" {
		log.Info().Str("output", path).Int("size", t.Size()).Msg("graph written")
	}
	return nil
}

// closeOutput closes c and reports its error through err unless err is
// already set.
func closeOutput(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = errors.Wrapf(cerr, "cannot close output %s", path)
	}
}
