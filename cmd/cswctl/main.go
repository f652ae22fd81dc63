package main

import (
	"os"

	"github.com/sirosfoundation/go-csw/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
