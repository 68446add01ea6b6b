package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	clierrors "github.com/drewcassidy/yaclog/internal/errors"
)

func TestExitCodeConstants(t *testing.T) {
	tests := map[string]struct {
		constant int
		want     int
	}{
		"ExitSuccess":          {constant: ExitSuccess, want: 0},
		"ExitFailure":          {constant: ExitFailure, want: 1},
		"ExitNotCanonical":     {constant: ExitNotCanonical, want: 2},
		"ExitInvalidArguments": {constant: ExitInvalidArguments, want: 3},
		"ExitChangelogMissing": {constant: ExitChangelogMissing, want: 4},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.constant)
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil error":         {err: nil, want: ExitSuccess},
		"exit error code 0": {err: NewExitError(0), want: 0},
		"exit error code 2": {err: NewExitError(2), want: 2},
		"generic error":     {err: errors.New("generic error"), want: ExitFailure},
		"argument error":    {err: clierrors.NewArgumentError("bad flag"), want: ExitInvalidArguments},
		"missing changelog": {err: clierrors.ChangelogNotFound("CHANGELOG.md"), want: ExitChangelogMissing},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "exit code 2", NewExitError(2).Error())
}
