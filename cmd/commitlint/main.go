package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// LintFailedError reports that at least one error-level violation was found.
type LintFailedError struct {
	Errors int
}

func (e *LintFailedError) Error() string {
	return fmt.Sprintf("commit message check failed with %d error(s)", e.Errors)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		// Violations are already printed.
		var lintErr *LintFailedError
		if errors.As(err, &lintErr) {
			os.Exit(1)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := createNewRootCommand().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
