package errors

import (
	"fmt"
	"os"
)

// Common error messages for the yaclog CLI.
// These templates ensure consistent, actionable error messages.

// ChangelogNotFound creates an error for a missing changelog file. It
// wraps os.ErrNotExist so callers can map it to a distinct exit code.
func ChangelogNotFound(path string) *CLIError {
	return &CLIError{
		Category: Changelog,
		Message:  fmt.Sprintf("changelog file not found: %s", path),
		Remediation: []string{
			"Run 'yaclog init' to create a new changelog",
			"Or point at an existing file with --path",
		},
		wrapped: os.ErrNotExist,
	}
}

// ChangelogNotWritable creates an error when the changelog cannot be written.
func ChangelogNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Changelog,
		fmt.Sprintf("cannot write changelog: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure the parent directory exists and is writable",
	)
}

// NoVersions creates an error when a command needs a version and the
// changelog has none.
func NoVersions(path string) *CLIError {
	return NewChangelogError(
		fmt.Sprintf("changelog has no versions: %s", path),
		"Add an '## Unreleased' heading to the changelog",
		"Or record a change with: yaclog entry \"<change>\"",
	)
}

// NoVersionNumber creates an error when no version in the changelog
// carries a version number to increment from.
func NoVersionNumber() *CLIError {
	return NewChangelogError(
		"no version in the changelog has a version number to increment",
		"Release an explicit first version with: yaclog release --version 0.1.0",
	)
}

// VersionNotFound creates an error for a version name lookup miss.
func VersionNotFound(name string, available []string) *CLIError {
	e := NewArgumentError(
		fmt.Sprintf("version not found: %s", name),
		"Version names must match the changelog header exactly",
		"List versions with: yaclog show --all --name",
	)
	if len(available) > 0 {
		e.Remediation = append(e.Remediation, "Newest version is: "+available[0])
	}
	return e
}

// InvalidVersionNumber creates an error for a version string that does
// not parse as PEP 440.
func InvalidVersionNumber(input string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version number: %s", input),
		"yaclog release --version <PEP 440 version>",
		"Version numbers look like 1.2.3, 2.0.0rc1, or 1.0.0.post1",
	)
}

// InvalidTag creates an error for a malformed version tag.
func InvalidTag(tag string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid tag: %s", tag),
		"yaclog tag <TAG> [version]",
		"Tags are uppercase letters and digits with no spaces, like YANKED",
	)
}

// NothingToIncrement creates an error for a pre-release bump on a
// version with no pre-release segment.
func NothingToIncrement(version string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("version %s has no pre-release segment to increment", version),
		"Start a pre-release first, e.g.: yaclog release --minor --rc",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Delete the file to fall back to defaults",
	)
}

// InvalidFlagCombination creates an error for incompatible flag combinations.
func InvalidFlagCombination(flags string, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination: %s", flags),
		reason,
		"Use 'yaclog <command> --help' to see valid options",
	)
}

// GitNotRepository creates an error when not in a git repository.
func GitNotRepository() *CLIError {
	return &CLIError{
		Category: Git,
		Message:  "not a git repository",
		Remediation: []string{
			"Initialize with: git init",
			"Or run 'yaclog release' without --commit",
		},
	}
}

// GitOperationFailed wraps a failure from the git collaborator.
func GitOperationFailed(op string, err error) *CLIError {
	return WrapWithMessage(err, Git,
		fmt.Sprintf("git %s failed", op),
		"The changelog was already updated; resolve the git state and retry by hand",
	)
}
