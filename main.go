package main

import (
	"os"

	"github.com/harrisonrobin/planus/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
