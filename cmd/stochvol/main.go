package main

import (
	"os"

	"github.com/rustyeddy/stochvol/cmd/stochvol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
