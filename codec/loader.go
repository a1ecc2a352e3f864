package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// Loader resolves sidecar documents by basename over a pluggable filesystem.
// Production code hands it an osfs rooted at the geometry directory; tests
// hand it a memfs.
type Loader struct {
	FS       billy.Filesystem
	Dir      string
	Registry *Registry
}

// candidate extensions, tried in order.
var sidecarExts = []string{".yaml", ".yml", ".json"}

// Load locates <name>.yaml, <name>.yml or <name>.json under Dir, parses it
// and decodes it through the registry.
func (l *Loader) Load(name string) (any, error) {
	for _, ext := range sidecarExts {
		path := filepath.Join(l.Dir, name+ext)
		if _, err := l.FS.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return ReadFile(l.FS, path, l.Registry)
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Func adapts the loader for Ref resolution. A nil Loader yields a nil
// LoadFunc, which makes basename references fail with a clear error.
func (l *Loader) Func() LoadFunc {
	if l == nil {
		return nil
	}
	return l.Load
}
