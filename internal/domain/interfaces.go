package domain

// TagStore is the version-control backing store for tags. Implementations
// operate on local repository state only; no call performs a network
// operation.
type TagStore interface {
	// TagExists reports whether a tag with the exact name exists
	TagExists(name string) (bool, error)
	// ResolveCommit resolves a full SHA to a commit hash, or the current
	// HEAD when sha is empty. Returns the resolved commit hash.
	ResolveCommit(sha string) (string, error)
	// CreateTag creates an annotated tag at the given commit with the
	// given message and tagger identity
	CreateTag(name, commit, message string, tagger Identity) error
}
