package gitlog

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/abdidvp/gitcomply/internal/domain"
)

// GitLogAdapter implements domain.CommitLog using go-git.
type GitLogAdapter struct{}

func New() *GitLogAdapter {
	return &GitLogAdapter{}
}

// Recent returns up to limit commits starting from HEAD, newest first.
// A limit of zero or less means no limit.
func (g *GitLogAdapter) Recent(path string, limit int) ([]domain.CommitEntry, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	var entries []domain.CommitEntry
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(entries) >= limit {
			return storer.ErrStop
		}
		title, body := splitMessage(c.Message)
		entries = append(entries, domain.CommitEntry{
			Hash:  c.Hash.String(),
			Title: title,
			Body:  body,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating commits: %w", err)
	}

	return entries, nil
}

// splitMessage separates a commit message into its subject line and body.
func splitMessage(message string) (title, body string) {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	title, body, _ = strings.Cut(message, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(body)
}
