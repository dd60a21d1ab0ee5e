package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/passvault/cmd"
	"github.com/PolarWolf314/passvault/internal/ui"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		}
		os.Exit(1)
	}
}
