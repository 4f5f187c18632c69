// Package gitrepo adapts a local git repository to the domain.TagStore
// contract using go-git. All operations act on local repository state;
// nothing here touches the network.
package gitrepo

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/quantmind-br/autotag-go/internal/domain"
)

// Repository implements domain.TagStore over a go-git repository handle
type Repository struct {
	repo *git.Repository
}

// Open opens the git repository at path. A missing repository maps to
// domain.ErrRepositoryNotFound, the run's only fatal condition.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w at %q", domain.ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open repository at %q: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// NewRepository wraps an already-opened go-git repository. Used by tests
// to run against in-memory repositories.
func NewRepository(repo *git.Repository) *Repository {
	return &Repository{repo: repo}
}

// TagExists reports whether refs/tags/<name> exists
func (r *Repository) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to look up tag %q: %w", name, err)
}

// ResolveCommit resolves sha to a commit hash, or the current HEAD when
// sha is empty. Only full 40-hex SHAs are accepted.
func (r *Repository) ResolveCommit(sha string) (string, error) {
	if sha == "" {
		return r.resolveHead()
	}

	if !plumbing.IsHash(sha) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidCommitSHA, sha)
	}

	commit, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrCommitNotFound, sha)
		}
		return "", fmt.Errorf("failed to resolve commit %s: %w", sha, err)
	}

	return commit.Hash.String(), nil
}

func (r *Repository) resolveHead() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHeadUnresolvable, err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHeadUnresolvable, err)
	}

	return commit.Hash.String(), nil
}

// CreateTag creates an annotated tag at commit with the given message and
// tagger identity
func (r *Repository) CreateTag(name, commit, message string, tagger domain.Identity) error {
	_, err := r.repo.CreateTag(name, plumbing.NewHash(commit), &git.CreateTagOptions{
		Tagger: &object.Signature{
			Name:  tagger.Name,
			Email: tagger.Email,
			When:  time.Now(),
		},
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return nil
}
