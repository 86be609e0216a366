package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cisync/internal/domain/entities"
	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// tokenUsername is the user name GitHub expects alongside a token over HTTPS.
const tokenUsername = "x-access-token"

// GitRepository implements repositories.VersionControlRepository with go-git.
type GitRepository struct {
	auth        transport.AuthMethod // nil: anonymous
	authorName  string
	authorEmail string
}

// NewGitRepository creates a Git client that authenticates with the GitHub
// token when one is configured.
func NewGitRepository(settings *entities.Settings) repositories.VersionControlRepository {
	repo := &GitRepository{
		authorName:  settings.Commit.AuthorName,
		authorEmail: settings.Commit.AuthorEmail,
	}
	if token := settings.GitHubSecret(); token.Present() {
		repo.auth = &http.BasicAuth{
			Username: tokenUsername,
			Password: token.Value(),
		}
	}
	return repo
}

// Clone clones url into dir.
func (r *GitRepository) Clone(ctx context.Context, url, dir string) error {
	logger.Debugf("Cloning %s into %s", url, dir)

	_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:  url,
		Auth: r.auth,
	})
	if err != nil {
		return fmt.Errorf("git clone: %w", err)
	}
	return nil
}

// CommitAndPush stages everything in dir, commits it and pushes to origin.
func (r *GitRepository) CommitAndPush(ctx context.Context, dir, message string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	if addErr := worktree.AddWithOptions(&gogit.AddOptions{All: true}); addErr != nil {
		return fmt.Errorf("failed to stage changes: %w", addErr)
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	if status.IsClean() {
		return entities.ErrNothingToCommit
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  r.authorName,
			Email: r.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	logger.Debugf("Committed %s in %s", hash.String(), dir)

	err = repo.PushContext(ctx, &gogit.PushOptions{Auth: r.auth})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push changes: %w", err)
	}
	return nil
}
