// Package git provides the git collaborator for yaclog: staging the
// changelog, committing releases, and creating release tags. It uses the
// go-git library with PlainOpenWithOptions so commands work from any
// subdirectory of the repository.
package git

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an open git repository and its worktree root.
type Repo struct {
	repo *git.Repository
	root string
}

// Open opens the git repository containing the given path, traversing up
// the directory tree to find the repository root. If path is empty, the
// current working directory is used.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	logDebug("[git] repository opened at %s", worktree.Filesystem.Root())
	return &Repo{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// IsRepository checks if the given path is within a git repository.
func IsRepository(path string) bool {
	_, err := Open(path)
	result := err == nil
	logDebug("[git] IsRepository: %v", result)
	return result
}

// Root returns the absolute path to the repository's worktree root.
func (r *Repo) Root() string {
	return r.root
}

// CurrentBranch returns the name of the current branch, or empty string
// in detached HEAD state.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}
	return head.Name().Short(), nil
}

// Commit stages the given files and commits them with the message.
// Paths may be absolute or relative to the current directory; they are
// resolved against the worktree root before staging. Returns the new
// commit hash.
func (r *Repo) Commit(paths []string, message string) (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	for _, path := range paths {
		rel, err := r.relPath(path)
		if err != nil {
			return "", err
		}
		logDebug("[git] staging %s", rel)
		if _, err := worktree.Add(rel); err != nil {
			return "", fmt.Errorf("staging %s: %w", rel, err)
		}
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}

	logDebug("[git] committed %s", hash)
	return hash.String(), nil
}

// Tag creates an annotated tag with the given name and message at HEAD.
// Returns an error if the tag already exists.
func (r *Repo) Tag(name, message string) error {
	if err := r.checkTagExists(name); err != nil {
		return err
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag '%s': %w", name, err)
	}

	logDebug("[git] created tag %s at %s", name, head.Hash())
	return nil
}

// checkTagExists returns an error if the tag already exists.
func (r *Repo) checkTagExists(name string) error {
	tagRef := plumbing.NewTagReferenceName(name)
	_, err := r.repo.Reference(tagRef, false)
	if err == nil {
		return fmt.Errorf("tag '%s' already exists", name)
	}
	if err != plumbing.ErrReferenceNotFound {
		return fmt.Errorf("checking tag existence: %w", err)
	}
	return nil
}

// relPath resolves a path to be relative to the worktree root, as
// required by go-git's staging API.
func (r *Repo) relPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", fmt.Errorf("path %s is outside the repository: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}
