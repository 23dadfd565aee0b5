package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/barun-bash/uic/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, cli.Error(err.Error()))
		}
		os.Exit(1)
	}
}
