package main

import (
	"github.com/rs/zerolog/log"

	"github.com/g-m-twostay/scapegoat/cmd/sgtree/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("sgtree failed")
	}
}
