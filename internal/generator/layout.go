package generator

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
)

// relDest maps a catalog file spec to its destination path relative to
// the project root, slash-separated. The root split is decided once per
// configuration, not re-derived per file: react projects root API and
// frontend files under two sibling directories, htmx projects put
// everything under the project root.
func relDest(cfg *config.ProjectConfig, spec catalog.FileSpec) string {
	switch spec.Root {
	case catalog.RootAPI:
		if dir := cfg.APIDirName(); dir != "" {
			return path.Join(dir, spec.Dest)
		}
		return spec.Dest
	case catalog.RootFrontend:
		return path.Join(cfg.FrontendDirName(), spec.Dest)
	default:
		return spec.Dest
	}
}

// validateDest ensures a destination path stays inside the project root.
// Catalog entries are static, but the check keeps the invariant explicit
// and covers future catalog edits.
func validateDest(rel string) error {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, rel)
	}
	return nil
}
