package main

import (
	"context"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/superx/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	r, err := runner.NewRunner(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
