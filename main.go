package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/khedmalink/khedma/cmd"
	"github.com/khedmalink/khedma/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		// command failures have already been reported by the formatter
		if !exitErr.Reported {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}

	// cobra flag and argument errors
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(cli.ExitUsage)
}
