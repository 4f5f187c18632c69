package manifest

import (
	"strings"

	"github.com/quantmind-br/autotag-go/internal/document"
	"github.com/quantmind-br/autotag-go/internal/domain"
)

// EcosystemSpec describes how to extract a package descriptor from one
// ecosystem's manifest format
type EcosystemSpec struct {
	Ecosystem   domain.Ecosystem
	Filename    string
	Format      document.Format
	EnabledPath []string
	NamePath    []string
	VersionPath []string

	// NormalizeName rewrites the raw package name for use in tag names,
	// nil when the ecosystem uses names as-is
	NormalizeName func(string) string
}

// normalizeNpmName strips the scope marker and flattens the scope
// separator: "@scope/pkg" becomes "scope__pkg"
func normalizeNpmName(name string) string {
	name = strings.ReplaceAll(name, "@", "")
	return strings.ReplaceAll(name, "/", "__")
}

// Ecosystems lists the supported ecosystem specs
var Ecosystems = []EcosystemSpec{
	{
		Ecosystem:   domain.EcosystemCargo,
		Filename:    "Cargo.toml",
		Format:      document.FormatTOML,
		EnabledPath: []string{"package", "metadata", "auto-tag", "enabled"},
		NamePath:    []string{"package", "name"},
		VersionPath: []string{"package", "version"},
	},
	{
		Ecosystem:     domain.EcosystemNpm,
		Filename:      "package.json",
		Format:        document.FormatJSON,
		EnabledPath:   []string{"autoTag", "enabled"},
		NamePath:      []string{"name"},
		VersionPath:   []string{"version"},
		NormalizeName: normalizeNpmName,
	},
	{
		Ecosystem:   domain.EcosystemPep621Poetry,
		Filename:    "pyproject.toml",
		Format:      document.FormatTOML,
		EnabledPath: []string{"tool", "auto-tag", "enabled"},
		NamePath:    []string{"tool", "poetry", "name"},
		VersionPath: []string{"tool", "poetry", "version"},
	},
}

// SpecForFilename returns the ecosystem spec whose manifest filename
// exactly matches name
func SpecForFilename(name string) (EcosystemSpec, bool) {
	for _, spec := range Ecosystems {
		if spec.Filename == name {
			return spec, true
		}
	}
	return EcosystemSpec{}, false
}
