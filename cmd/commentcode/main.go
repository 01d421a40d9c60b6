package main

import (
	"os"

	"github.com/sentineltools/commentcode/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
