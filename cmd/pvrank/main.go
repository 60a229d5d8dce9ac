package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pvrank/internal/failure"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(failure.ExitCode(err))
	}
}
