package cmd

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/scapegoat/Trees"
)

// readTokens from --input, else from the positional args, else from stdin.
func readTokens(v *viper.Viper, args []string, stdin io.Reader) ([]string, error) {
	var r io.Reader
	if path := v.GetString(flagInput); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open input %s", path)
		}
		defer f.Close()
		r = f
	} else if len(args) > 0 {
		r = strings.NewReader(strings.Join(args, " "))
	} else {
		r = stdin
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read values")
	}
	return strings.Fields(string(b)), nil
}

func parseInts(tokens []string) ([]int, error) {
	vs := make([]int, len(tokens))
	for i, s := range tokens {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d is not an int", i)
		}
		vs[i] = n
	}
	return vs, nil
}

// load inserts vs in order into a tree of the configured kind.
func load[T constraints.Ordered](v *viper.Viper, vs []T) (Trees.Tree[T], error) {
	var t Trees.Tree[T]
	switch kind := v.GetString(flagKind); kind {
	case kindScapegoat:
		t = Trees.NewSGTree[T]()
	case kindBST:
		t = Trees.NewBST[T]()
	default:
		return nil, errors.Errorf("unknown tree kind %q", kind)
	}
	for _, x := range vs {
		t.Insert(x)
	}
	if v.GetBool(flagBalance) {
		t.Balance()
	}
	log.Debug().
		Str("kind", v.GetString(flagKind)).
		Int("size", t.Size()).
		Int("height", t.Height()).
		Msg("tree loaded")
	return t, nil
}

// treeFunc is what a subcommand does with the loaded tree.
type treeFunc[T any] func(cmd *cobra.Command, v *viper.Viper, t Trees.Tree[T]) error

// withTree loads the values for cmd according to --type and passes the tree
// to the matching instantiation.
func withTree(cmd *cobra.Command, v *viper.Viper, args []string, ints treeFunc[int], strs treeFunc[string]) error {
	tokens, err := readTokens(v, args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	switch typ := v.GetString(flagType); typ {
	case typeInt:
		vs, err := parseInts(tokens)
		if err != nil {
			return err
		}
		t, err := load(v, vs)
		if err != nil {
			return err
		}
		return ints(cmd, v, t)
	case typeString:
		t, err := load(v, tokens)
		if err != nil {
			return err
		}
		return strs(cmd, v, t)
	default:
		return errors.Errorf("unknown value type %q", typ)
	}
}
