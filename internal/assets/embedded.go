package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed presets/*.yaml styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load reads {kind}/{name}{ext} from the embedded filesystem.
func (e *EmbeddedLoader) Load(kind Kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := builtin.ReadFile(path.Join(kind.dir, name+kind.ext))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", kind.notFound, name)
	}
	return content, nil
}

// Names lists the embedded asset names of a kind, sorted.
func (e *EmbeddedLoader) Names(kind Kind) []string {
	entries, err := fs.ReadDir(builtin, kind.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), kind.ext); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
