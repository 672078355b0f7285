package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/projectdiscovery/ipfold/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	r, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %s\n", err)
	}

	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("could not fold address list: %s\n", err)
	}
}
