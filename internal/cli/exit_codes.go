package cli

import (
	"errors"
	"fmt"
	"os"

	clierrors "github.com/drewcassidy/yaclog/internal/errors"
)

// Exit codes for the yaclog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic command failure
	ExitFailure = 1

	// ExitNotCanonical indicates `format --check` found the file not canonical
	ExitNotCanonical = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitChangelogMissing indicates the changelog file does not exist
	ExitChangelogMissing = 4
)

// ExitError carries an explicit process exit code through cobra's
// error return path.
type ExitError struct {
	Code int
}

// NewExitError returns an error that makes the process exit with code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode maps an error from Execute to a process exit code. A nil
// error is success; ExitErrors carry their own code; structured errors
// map by category; anything else is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch {
		case errors.Is(cliErr, os.ErrNotExist):
			return ExitChangelogMissing
		case cliErr.Category == clierrors.Argument:
			return ExitInvalidArguments
		}
	}
	return ExitFailure
}
