package entities

import (
	"sort"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

const identifierSeparator = "."

// Repository is re-exported from gitforge.
type Repository = gitforgeEntities.Repository

// RepositoryDirectory maps a repository identifier ("org.repo") to the
// repository it names. It is built once per run and never modified afterwards.
type RepositoryDirectory map[string]Repository

// URL returns the clone URL of the given identifier, or "" if it is unknown.
func (d RepositoryDirectory) URL(id string) string {
	return d[id].RemoteURL
}

// RepoName returns the provider's name of the repository, falling back to
// the normalized identifier when the directory does not record one.
func (d RepositoryDirectory) RepoName(id, organization string) string {
	if name := d[id].Name; name != "" {
		return name
	}
	return NormalizeRepositoryName(id, organization)
}

// IDs returns the identifiers of the directory in lexicographic order.
func (d RepositoryDirectory) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RepositorySet is a set of repository identifiers.
type RepositorySet map[string]struct{}

// NewRepositorySet builds a set from the given identifiers.
func NewRepositorySet(ids ...string) RepositorySet {
	set := make(RepositorySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is a member of the set.
func (s RepositorySet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// RepositoryIDFromFullName converts an API "owner/repo" name into an identifier.
func RepositoryIDFromFullName(fullName string) string {
	return strings.ReplaceAll(fullName, "/", identifierSeparator)
}

// NormalizeRepositoryName strips the "<organization>." prefix from an
// identifier, giving the name used in provider API paths. The prefix is
// stripped until none is left, so the result is stable under re-application.
func NormalizeRepositoryName(id, organization string) string {
	if organization == "" {
		return id
	}
	prefix := organization + identifierSeparator
	for strings.HasPrefix(id, prefix) {
		id = strings.TrimPrefix(id, prefix)
	}
	return id
}
