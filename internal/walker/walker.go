// Package walker enumerates manifest files under a set of root paths.
package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/quantmind-br/autotag-go/internal/manifest"
	"github.com/quantmind-br/autotag-go/internal/utils"
)

// Handler is invoked for every discovered manifest file
type Handler func(path string, spec manifest.EcosystemSpec)

// Walker recursively scans roots for manifest files by exact filename
// match and dispatches each match to a handler. Entries that cannot be
// accessed are logged and skipped; the walk never aborts on them.
type Walker struct {
	logger *utils.Logger
}

// NewWalker creates a new Walker
func NewWalker(logger *utils.Logger) *Walker {
	return &Walker{logger: logger.WithComponent("walker")}
}

// Walk visits every entry under each root in order, calling handler for
// entries whose base name is a known manifest filename
func (w *Walker) Walk(roots []string, handler Handler) {
	for _, root := range roots {
		w.walkRoot(root, handler)
	}
}

func (w *Walker) walkRoot(root string, handler Handler) {
	// The returned error is always nil: entry errors are reported and
	// swallowed so the walk continues.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Error().Err(err).Str("path", path).Msg("cannot access file")
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if spec, ok := manifest.SpecForFilename(d.Name()); ok {
			w.logger.Debug().
				Str("path", path).
				Str("ecosystem", string(spec.Ecosystem)).
				Msg("Discovered manifest")
			handler(path, spec)
		}

		return nil
	})
}
