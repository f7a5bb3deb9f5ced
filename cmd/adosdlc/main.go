package main

import (
	"os"

	"github.com/daydemir/adosdlc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
