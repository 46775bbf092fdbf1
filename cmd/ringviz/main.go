package main

import (
	"os"

	"github.com/kesava936/money-muling-detection/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
