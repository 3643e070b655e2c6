package sources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kerbaras/library/pkg/data"
)

// Source supplies the items a catalog starts with.
type Source interface {
	Name() string
	Load() ([]*data.Item, error)
}

// Open picks a source for a seed file by its extension. An empty path
// selects the built-in collection.
func Open(path string) (Source, error) {
	if path == "" {
		return NewBuiltin(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAML(path), nil
	case ".csv":
		return NewCSV(path), nil
	default:
		return nil, fmt.Errorf("unsupported seed file %q: expected .yaml, .yml or .csv", path)
	}
}

// NewCatalog builds a catalog holding every item the source provides, in
// the order it provides them.
func NewCatalog(src Source) (*data.Catalog, error) {
	items, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}

	catalog := data.NewCatalog()
	for _, item := range items {
		catalog.AddItem(item)
	}
	return catalog, nil
}
