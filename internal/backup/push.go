package backup

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
)

// File is one file to include in a backup commit.
type File struct {
	Path    string
	Content string
}

// PushFiles commits the given files to a branch in one commit and moves
// the branch ref to it. The branch must already exist.
func (c *Client) PushFiles(ctx context.Context, repoName, branch, message string, files []File) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no files to push")
	}

	owner, err := c.userLogin(ctx)
	if err != nil {
		return "", err
	}

	refName := "refs/heads/" + branch
	ref, _, err := c.gh.Git.GetRef(ctx, owner, repoName, refName)
	if err != nil {
		return "", fmt.Errorf("failed to get ref %s: %w", refName, err)
	}
	parentSHA := ref.Object.GetSHA()

	parent, _, err := c.gh.Git.GetCommit(ctx, owner, repoName, parentSHA)
	if err != nil {
		return "", fmt.Errorf("failed to get parent commit: %w", err)
	}

	entries := make([]*github.TreeEntry, 0, len(files))
	for _, f := range files {
		blob, _, err := c.gh.Git.CreateBlob(ctx, owner, repoName, &github.Blob{
			Content:  github.String(f.Content),
			Encoding: github.String("utf-8"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to create blob for %s: %w", f.Path, err)
		}
		entries = append(entries, &github.TreeEntry{
			Path: github.String(f.Path),
			Mode: github.String("100644"),
			Type: github.String("blob"),
			SHA:  blob.SHA,
		})
	}

	tree, _, err := c.gh.Git.CreateTree(ctx, owner, repoName, parent.Tree.GetSHA(), entries)
	if err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}

	commit, _, err := c.gh.Git.CreateCommit(ctx, owner, repoName, &github.Commit{
		Message: github.String(message),
		Tree:    tree,
		Parents: []*github.Commit{{SHA: github.String(parentSHA)}},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}

	ref.Object.SHA = commit.SHA
	if _, _, err := c.gh.Git.UpdateRef(ctx, owner, repoName, ref, false); err != nil {
		return "", fmt.Errorf("failed to update ref: %w", err)
	}

	return commit.GetSHA(), nil
}
