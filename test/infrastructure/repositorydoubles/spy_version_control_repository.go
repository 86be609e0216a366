//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/cisync/internal/domain/repositories"
)

// CloneCall records one Clone invocation.
type CloneCall struct {
	URL string
	Dir string
}

// CommitCall records one CommitAndPush invocation.
type CommitCall struct {
	Dir     string
	Message string
}

// SpyVersionControlRepository implements repositories.VersionControlRepository.
// Clone creates the target directory so the caller can write into it.
type SpyVersionControlRepository struct {
	CloneErrs   map[string]error // url -> error
	CommitErrs  map[string]error // dir -> error
	CloneCalls  []CloneCall
	CommitCalls []CommitCall
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

func (s *SpyVersionControlRepository) Clone(_ context.Context, url, dir string) error {
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url, Dir: dir})
	if err, ok := s.CloneErrs[url]; ok {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *SpyVersionControlRepository) CommitAndPush(_ context.Context, dir, message string) error {
	s.CommitCalls = append(s.CommitCalls, CommitCall{Dir: dir, Message: message})
	return s.CommitErrs[dir]
}
