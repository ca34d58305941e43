package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// UsageError reports a bad invocation. main prints the command usage on
// stdout and exits 1.
type UsageError struct {
	cmd    *cobra.Command
	reason string
}

func newUsageError(cmd *cobra.Command, format string, args ...any) *UsageError {
	return &UsageError{cmd: cmd, reason: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string { return e.reason }

// Usage returns the reason followed by the usage line of the failing command.
func (e *UsageError) Usage() string {
	if e.cmd == nil {
		return e.reason
	}
	return fmt.Sprintf("%s\nUsage: %s", e.reason, e.cmd.UseLine())
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return newUsageError(cmd, "expected %d argument(s), got %d", n, len(args))
		}
		return nil
	}
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return newUsageError(cmd, "expected at most %d argument(s), got %d", n, len(args))
		}
		return nil
	}
}

func parsePositiveInt(cmd *cobra.Command, name, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, newUsageError(cmd, "%s must be a positive integer, got %q", name, raw)
	}
	return value, nil
}
