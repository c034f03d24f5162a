// Package backup pushes generated configuration artifacts to a GitHub
// repository so they survive machine loss.
package backup

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// ErrNoToken is returned when no GitHub token is configured.
var ErrNoToken = errors.New("github token is required")

// Client wraps an authenticated GitHub API client.
type Client struct {
	gh    *github.Client
	login string
}

// User describes the authenticated GitHub account.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PublicRepos int    `json:"public_repos"`
}

// Repository describes a GitHub repository.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
}

// NewClient builds an authenticated client from a personal access token.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{gh: github.NewClient(tc)}, nil
}

// SetLogin pre-seeds the account login, skipping the user lookup when
// the username is already configured.
func (c *Client) SetLogin(login string) {
	c.login = login
}

// TestConnection verifies the token works by fetching the authenticated
// user.
func (c *Client) TestConnection(ctx context.Context) error {
	_, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("github connection test failed: %w", err)
	}
	return nil
}

// UserInfo returns the authenticated user's profile.
func (c *Client) UserInfo(ctx context.Context) (*User, error) {
	u, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	c.login = u.GetLogin()
	return &User{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Email:       u.GetEmail(),
		PublicRepos: u.GetPublicRepos(),
	}, nil
}

// login resolves and caches the authenticated user's login name.
func (c *Client) userLogin(ctx context.Context) (string, error) {
	if c.login != "" {
		return c.login, nil
	}
	u, err := c.UserInfo(ctx)
	if err != nil {
		return "", err
	}
	return u.Login, nil
}

// ListRepositories returns every repository owned by the authenticated
// user, most recently updated first.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	var all []Repository

	opts := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		repos, resp, err := c.gh.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		for _, r := range repos {
			all = append(all, toRepository(r))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetRepository fetches one repository of the authenticated user, or nil
// when it does not exist.
func (c *Client) GetRepository(ctx context.Context, name string) (*Repository, error) {
	owner, err := c.userLogin(ctx)
	if err != nil {
		return nil, err
	}

	r, resp, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	repo := toRepository(r)
	return &repo, nil
}

// CreateRepository creates a repository for the authenticated user.
func (c *Client) CreateRepository(ctx context.Context, name, description string, private bool) (*Repository, error) {
	r, _, err := c.gh.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(private),
		AutoInit:    github.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	repo := toRepository(r)
	return &repo, nil
}

// EnsureRepository returns the named repository, creating it when it
// does not exist yet.
func (c *Client) EnsureRepository(ctx context.Context, name, description string, private bool) (*Repository, error) {
	repo, err := c.GetRepository(ctx, name)
	if err != nil {
		return nil, err
	}
	if repo != nil {
		return repo, nil
	}
	return c.CreateRepository(ctx, name, description, private)
}

func toRepository(r *github.Repository) Repository {
	return Repository{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		Private:       r.GetPrivate(),
		HTMLURL:       r.GetHTMLURL(),
		DefaultBranch: r.GetDefaultBranch(),
	}
}

var repoNameInvalid = regexp.MustCompile(`[^a-z0-9._-]+`)

// SuggestRepositoryName derives a valid repository name from a project
// name.
func SuggestRepositoryName(projectName string) string {
	name := strings.ToLower(strings.TrimSpace(projectName))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	name = repoNameInvalid.ReplaceAllString(name, "")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "ctxforge-backup"
	}
	return name + "-config"
}
