package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(newRootCommand(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and maps the outcome to an exit code. Usage
// errors print the command usage on stdout; everything else goes to stderr.
func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintln(stdout, usageErr.Usage())
	case errors.Is(err, context.Canceled):
	default:
		fmt.Fprintln(stderr, err)
	}
	return 1
}
