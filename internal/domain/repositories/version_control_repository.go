package repositories

import "context"

// VersionControlRepository performs the Git operations of a CI propagation.
type VersionControlRepository interface {
	// Clone clones url into dir.
	Clone(ctx context.Context, url, dir string) error

	// CommitAndPush stages every change in dir, commits it with message and pushes
	// to the origin remote. It returns entities.ErrNothingToCommit on a clean tree.
	CommitAndPush(ctx context.Context, dir, message string) error
}
