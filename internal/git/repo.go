// Package git provides the source-control queries the build pipeline needs,
// backed by go-git.
package git

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// shortHashLength is the abbreviated commit hash length used when HEAD is
// detached and no branch name exists.
const shortHashLength = 8

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// Open opens a git repository at the given path
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// OpenFromCwd opens the repository containing the current working directory
func OpenFromCwd() (*Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return Open(wd)
}

// Root returns the root directory of the repository's worktree
func (r *Repository) Root() (string, error) {
	worktree, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// CurrentBranch returns the current branch name. On a detached HEAD it falls
// back to the abbreviated commit hash so the pipeline can still derive
// artifact paths.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}

	return head.Hash().String()[:shortHashLength], nil
}

// RemoteURL returns the first configured URL of the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no configured URL", name)
	}
	return urls[0], nil
}
