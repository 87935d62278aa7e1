package main

import (
	"fmt"
	"os"

	"github.com/mobile-client/platform-shim/cmd/platform-info/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
