package entities

import "errors"

var (
	// ErrMissingCredential is returned when a privileged call is attempted
	// without the credential it needs.
	ErrMissingCredential = errors.New("credential is not specified")

	// ErrNothingToCommit is returned when the working tree has no changes to commit.
	ErrNothingToCommit = errors.New("nothing to commit")
)
