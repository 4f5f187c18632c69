package manifest

import (
	"fmt"
	"os"

	"github.com/quantmind-br/autotag-go/internal/document"
	"github.com/quantmind-br/autotag-go/internal/domain"
)

// Extractor turns manifest files into package descriptors
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads and parses the manifest at path according to spec.
// An opted-out manifest (enabled flag absent or not true) returns a
// descriptor with AutoTagEnabled false and no error.
func (e *Extractor) Extract(path string, spec EcosystemSpec) (*domain.PackageDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return e.ExtractFromBytes(data, path, spec)
}

// ExtractFromBytes extracts a package descriptor from raw manifest bytes
func (e *Extractor) ExtractFromBytes(data []byte, path string, spec EcosystemSpec) (*domain.PackageDescriptor, error) {
	doc, err := document.Parse(data, spec.Format)
	if err != nil {
		return nil, err
	}

	desc := &domain.PackageDescriptor{
		Ecosystem: spec.Ecosystem,
		Path:      path,
	}

	if enabled, ok := doc.GetBool(spec.EnabledPath...); !ok || !enabled {
		return desc, nil
	}
	desc.AutoTagEnabled = true

	name, ok := doc.GetString(spec.NamePath...)
	if !ok || name == "" {
		return nil, domain.NewFieldNotFoundError("name")
	}
	if spec.NormalizeName != nil {
		name = spec.NormalizeName(name)
	}
	desc.Name = name

	version, ok := doc.GetString(spec.VersionPath...)
	if !ok || version == "" {
		return nil, domain.NewFieldNotFoundError("version")
	}
	desc.Version = version

	return desc, nil
}
