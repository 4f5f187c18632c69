// Package manifest extracts package descriptors from ecosystem manifest
// files. Each supported ecosystem is described as data (filename, document
// format, key paths, name normalization) so all three share one extraction
// routine.
//
// # Supported ecosystems
//
//	Cargo.toml      package.metadata.auto-tag.enabled  package.name         package.version
//	package.json    autoTag.enabled                    name                 version
//	pyproject.toml  tool.auto-tag.enabled              tool.poetry.name     tool.poetry.version
//
// A manifest whose enabled-flag path is absent or not boolean true is the
// normal opted-out case and yields a descriptor with AutoTagEnabled false.
// With the flag enabled, a missing or non-string name/version is a
// domain.FieldNotFoundError.
package manifest
