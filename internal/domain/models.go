package domain

import "fmt"

// Ecosystem identifies a supported packaging convention
type Ecosystem string

const (
	// EcosystemCargo is Rust's Cargo (Cargo.toml)
	EcosystemCargo Ecosystem = "cargo"

	// EcosystemNpm is JavaScript's npm (package.json)
	EcosystemNpm Ecosystem = "npm"

	// EcosystemPep621Poetry is Python's PEP 621 / poetry (pyproject.toml)
	EcosystemPep621Poetry Ecosystem = "pep621-poetry"
)

// PackageDescriptor describes one discovered package manifest.
// Name is already normalized for the ecosystem (npm names have "@"
// stripped and "/" replaced by "__").
type PackageDescriptor struct {
	Ecosystem      Ecosystem
	Path           string
	Name           string
	Version        string
	AutoTagEnabled bool
}

// TagRequest is the tag to be created for a descriptor
type TagRequest struct {
	Name    string
	Message string
}

// NewTagRequest computes the tag name and message for a descriptor
func NewTagRequest(desc *PackageDescriptor) TagRequest {
	return TagRequest{
		Name:    fmt.Sprintf("release-%s-%s", desc.Name, desc.Version),
		Message: fmt.Sprintf("automatic release tag of %s (%s)", desc.Name, desc.Version),
	}
}

// Identity is the tag author recorded on annotated tags
type Identity struct {
	Name  string
	Email string
}
