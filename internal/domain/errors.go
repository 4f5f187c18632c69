package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrRepositoryNotFound indicates no git repository at the working directory
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrCommitNotFound indicates the requested commit does not exist
	ErrCommitNotFound = errors.New("commit not found")

	// ErrInvalidCommitSHA indicates the --commit value is not a valid SHA
	ErrInvalidCommitSHA = errors.New("invalid commit SHA")

	// ErrHeadUnresolvable indicates HEAD cannot be peeled to a commit
	ErrHeadUnresolvable = errors.New("cannot resolve HEAD to a commit")

	// ErrParse indicates a manifest is not valid TOML/JSON
	ErrParse = errors.New("manifest parse failed")
)

// FieldNotFoundError indicates a required manifest field is missing or
// not a string, while the auto-tag flag is enabled
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("package %s not found", e.Field)
}

// NewFieldNotFoundError creates a new FieldNotFoundError
func NewFieldNotFoundError(field string) *FieldNotFoundError {
	return &FieldNotFoundError{Field: field}
}

// ManifestError wraps a per-manifest failure with the offending path.
// The walk continues past these; only repository-open errors are fatal.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("failed to process %q: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// NewManifestError creates a new ManifestError
func NewManifestError(path string, err error) *ManifestError {
	return &ManifestError{Path: path, Err: err}
}
