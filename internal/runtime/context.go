// Package runtime provides a context type that bundles the repository,
// configuration and logger for use throughout the commands.
package runtime

import (
	"fmt"

	"buildway.dev/buildway/internal/config"
	"buildway.dev/buildway/internal/git"
	"buildway.dev/buildway/internal/output"
)

// Context provides access to the repository, config and output for commands
type Context struct {
	Repo     *git.Repository
	Config   *config.Config
	Splog    *output.Splog
	RepoRoot string
}

// NewContext opens the repository containing the working directory and loads
// its configuration.
func NewContext() (*Context, error) {
	repo, err := git.OpenFromCwd()
	if err != nil {
		return nil, err
	}

	repoRoot, err := repo.Root()
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Context{
		Repo:     repo,
		Config:   cfg,
		Splog:    output.NewSplog(),
		RepoRoot: repoRoot,
	}, nil
}

// BranchOrCurrent returns the given branch if non-empty, otherwise the
// repository's current branch (with its detached-HEAD hash fallback).
func (c *Context) BranchOrCurrent(branch string) (string, error) {
	if branch != "" {
		return branch, nil
	}
	return c.Repo.CurrentBranch()
}
