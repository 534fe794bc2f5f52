package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.NewConsoleWriter())

	if err := rootCommand().Execute(); err != nil {
		log.Error().Msgf("ethping: %v", err)
		os.Exit(1)
	}
}
