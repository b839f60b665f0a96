package main

import (
	"os"

	"github.com/fahmaliyi/pwvault/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
