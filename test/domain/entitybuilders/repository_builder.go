//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cisync/internal/domain/entities"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	name          string
	organization  string
	remoteURL     string
	defaultBranch string
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		name:          "test-repo",
		organization:  "vostok",
		defaultBranch: "refs/heads/master",
	}
}

// WithName sets the repository name (without the organization prefix).
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithOrganization sets the owning organization.
func (b *RepositoryBuilder) WithOrganization(organization string) *RepositoryBuilder {
	b.organization = organization
	return b
}

// WithRemoteURL sets the clone URL.
func (b *RepositoryBuilder) WithRemoteURL(remoteURL string) *RepositoryBuilder {
	b.remoteURL = remoteURL
	return b
}

// ID returns the identifier the built repository is keyed by in a directory.
func (b *RepositoryBuilder) ID() string {
	return b.organization + "." + b.name
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	remoteURL := b.remoteURL
	if remoteURL == "" {
		remoteURL = fmt.Sprintf("https://github.com/%s/%s", b.organization, b.name)
	}
	return entities.Repository{
		Name:          b.name,
		Organization:  b.organization,
		RemoteURL:     remoteURL,
		DefaultBranch: b.defaultBranch,
		ProviderName:  "github",
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-repo"
	b.organization = "vostok"
	b.remoteURL = ""
	b.defaultBranch = "refs/heads/master"
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:          b.name,
		organization:  b.organization,
		remoteURL:     b.remoteURL,
		defaultBranch: b.defaultBranch,
	}
}

// NewDirectory builds a repository directory from repository names in the given organization.
func NewDirectory(organization string, names ...string) entities.RepositoryDirectory {
	directory := make(entities.RepositoryDirectory, len(names))
	for _, name := range names {
		builder := NewRepositoryBuilder().WithOrganization(organization).WithName(name)
		directory[builder.ID()] = builder.BuildRepository()
	}
	return directory
}
