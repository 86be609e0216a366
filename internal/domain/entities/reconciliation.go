package entities

// Reconciliation is the outcome of cross-referencing GitHub and AppVeyor.
type Reconciliation struct {
	Included []string // present on both sides, sorted
	Skipped  []string // present on GitHub only, sorted
}

// Intersect walks the GitHub identifiers in lexicographic order and keeps the
// ones AppVeyor also knows about.
func Intersect(github RepositoryDirectory, appveyor RepositorySet) Reconciliation {
	result := Reconciliation{
		Included: []string{},
		Skipped:  []string{},
	}
	for _, id := range github.IDs() {
		if !appveyor.Contains(id) {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		result.Included = append(result.Included, id)
	}
	return result
}
