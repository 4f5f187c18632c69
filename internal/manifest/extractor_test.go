package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/autotag-go/internal/domain"
)

func cargoSpec(t *testing.T) EcosystemSpec {
	t.Helper()
	spec, ok := SpecForFilename("Cargo.toml")
	require.True(t, ok)
	return spec
}

func npmSpec(t *testing.T) EcosystemSpec {
	t.Helper()
	spec, ok := SpecForFilename("package.json")
	require.True(t, ok)
	return spec
}

func poetrySpec(t *testing.T) EcosystemSpec {
	t.Helper()
	spec, ok := SpecForFilename("pyproject.toml")
	require.True(t, ok)
	return spec
}

func TestExtractor_Cargo_Enabled(t *testing.T) {
	data := []byte(`
[package]
name = "foo"
version = "0.1.0"

[package.metadata.auto-tag]
enabled = true
`)

	desc, err := NewExtractor().ExtractFromBytes(data, "Cargo.toml", cargoSpec(t))
	require.NoError(t, err)

	assert.Equal(t, domain.EcosystemCargo, desc.Ecosystem)
	assert.True(t, desc.AutoTagEnabled)
	assert.Equal(t, "foo", desc.Name)
	assert.Equal(t, "0.1.0", desc.Version)

	req := domain.NewTagRequest(desc)
	assert.Equal(t, "release-foo-0.1.0", req.Name)
	assert.Equal(t, "automatic release tag of foo (0.1.0)", req.Message)
}

func TestExtractor_Cargo_OptedOut(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "flag absent",
			data: "[package]\nname = \"foo\"\nversion = \"0.1.0\"\n",
		},
		{
			name: "flag false",
			data: "[package]\nname = \"foo\"\nversion = \"0.1.0\"\n\n[package.metadata.auto-tag]\nenabled = false\n",
		},
		{
			name: "flag not boolean",
			data: "[package]\nname = \"foo\"\nversion = \"0.1.0\"\n\n[package.metadata.auto-tag]\nenabled = \"true\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := NewExtractor().ExtractFromBytes([]byte(tt.data), "Cargo.toml", cargoSpec(t))
			require.NoError(t, err)
			assert.False(t, desc.AutoTagEnabled)
		})
	}
}

func TestExtractor_Npm_ScopedName(t *testing.T) {
	data := []byte(`{
		"name": "@scope/pkg",
		"version": "1.2.3",
		"autoTag": {"enabled": true}
	}`)

	desc, err := NewExtractor().ExtractFromBytes(data, "package.json", npmSpec(t))
	require.NoError(t, err)

	assert.True(t, desc.AutoTagEnabled)
	assert.Equal(t, "scope__pkg", desc.Name)
	assert.Equal(t, "1.2.3", desc.Version)
	assert.Equal(t, "release-scope__pkg-1.2.3", domain.NewTagRequest(desc).Name)
}

func TestExtractor_Poetry(t *testing.T) {
	data := []byte(`
[tool.auto-tag]
enabled = true

[tool.poetry]
name = "mypkg"
version = "2.0.0"
`)

	desc, err := NewExtractor().ExtractFromBytes(data, "pyproject.toml", poetrySpec(t))
	require.NoError(t, err)

	assert.True(t, desc.AutoTagEnabled)
	assert.Equal(t, "mypkg", desc.Name)
	assert.Equal(t, "2.0.0", desc.Version)
}

func TestExtractor_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		spec      func(*testing.T) EcosystemSpec
		wantField string
	}{
		{
			name:      "cargo missing name",
			data:      "[package]\nversion = \"0.1.0\"\n\n[package.metadata.auto-tag]\nenabled = true\n",
			spec:      cargoSpec,
			wantField: "name",
		},
		{
			name:      "cargo missing version",
			data:      "[package]\nname = \"foo\"\n\n[package.metadata.auto-tag]\nenabled = true\n",
			spec:      cargoSpec,
			wantField: "version",
		},
		{
			name:      "npm non-string version",
			data:      `{"name": "pkg", "version": 3, "autoTag": {"enabled": true}}`,
			spec:      npmSpec,
			wantField: "version",
		},
		{
			name:      "poetry missing name",
			data:      "[tool.auto-tag]\nenabled = true\n\n[tool.poetry]\nversion = \"2.0.0\"\n",
			spec:      poetrySpec,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := NewExtractor().ExtractFromBytes([]byte(tt.data), "x", tt.spec(t))
			assert.Nil(t, desc)

			var fieldErr *domain.FieldNotFoundError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestExtractor_Malformed(t *testing.T) {
	_, err := NewExtractor().ExtractFromBytes([]byte("[package\n"), "Cargo.toml", cargoSpec(t))
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestExtractor_Extract_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Cargo.toml")
	content := "[package]\nname = \"ondisk\"\nversion = \"0.5.0\"\n\n[package.metadata.auto-tag]\nenabled = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	desc, err := NewExtractor().Extract(path, cargoSpec(t))
	require.NoError(t, err)
	assert.Equal(t, "ondisk", desc.Name)
	assert.Equal(t, path, desc.Path)
}

func TestExtractor_Extract_Unreadable(t *testing.T) {
	desc, err := NewExtractor().Extract(filepath.Join(t.TempDir(), "missing", "Cargo.toml"), cargoSpec(t))
	assert.Nil(t, desc)
	assert.Error(t, err)
}
