// Package github publishes production builds as GitHub releases.
package github

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// ReleaseClient publishes releases for one repository
type ReleaseClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewReleaseClient creates a ReleaseClient authenticated with the
// GITHUB_TOKEN environment variable.
func NewReleaseClient(ctx context.Context, owner, repo string) (*ReleaseClient, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &ReleaseClient{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}, nil
}

// PublishRelease creates a release tagged with the version string and returns
// its URL.
func (c *ReleaseClient) PublishRelease(ctx context.Context, tag, name, body string) (string, error) {
	release := &github.RepositoryRelease{
		TagName: github.String(tag),
		Name:    github.String(name),
	}
	if body != "" {
		release.Body = github.String(body)
	}

	created, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, release)
	if err != nil {
		return "", fmt.Errorf("failed to create release %s: %w", tag, err)
	}

	return created.GetHTMLURL(), nil
}

var remoteURLRegex = regexp.MustCompile(`^(?:https://[^/]+/|git@[^:]+:|ssh://git@[^/]+/)([^/]+)/(.+?)(?:\.git)?$`)

// OwnerRepoFromRemote extracts the owner and repository name from a git
// remote URL in https, ssh or scp-like form.
func OwnerRepoFromRemote(remoteURL string) (string, string, error) {
	matches := remoteURLRegex.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if matches == nil {
		return "", "", fmt.Errorf("cannot parse remote URL %q", remoteURL)
	}
	return matches[1], matches[2], nil
}
