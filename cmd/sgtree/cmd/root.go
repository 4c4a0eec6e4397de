package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagKind     = "kind"
	flagType     = "type"
	flagInput    = "input"
	flagBalance  = "balance"
	flagLogLevel = "log-level"
	flagConfig   = "config"
	flagOutput   = "output"

	kindScapegoat = "scapegoat"
	kindBST       = "bst"
	typeInt       = "int"
	typeString    = "string"

	envPrefix = "SGTREE"
)

// NewRootCmd returns the sgtree command. Every flag can also be set with the
// SGTREE_<FLAG> environment variable or in the file given by --config.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "sgtree",
		Short:         "build a scapegoat tree or a plain binary search tree from values and inspect it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.String(flagKind, kindScapegoat, "tree kind: scapegoat or bst")
	flags.String(flagType, typeInt, "value type: int or string")
	flags.String(flagInput, "", "file with whitespace separated values; positional args or stdin are used when empty")
	flags.Bool(flagBalance, false, "fully rebalance the tree after loading")
	flags.String(flagLogLevel, zerolog.InfoLevel.String(), "log level")
	flags.String(flagConfig, "", "config file")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newDotCmd(v), newStatsCmd(v))
	return root
}

func setup(cmd *cobra.Command, v *viper.Viper) error {
	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "cannot read config %s", path)
		}
	}
	lvl, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("cmd", cmd.Name()).
		Logger()
	return nil
}
