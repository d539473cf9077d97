package generator

import (
	"os"
	"path/filepath"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/defs"
	"github.com/stackgen-cli/stackgen/internal/metadata"
)

// ExpectedFiles returns the relative paths the catalog says must exist
// for a configuration, in generation order, metadata file included.
func (g *Generator) ExpectedFiles(cfg *config.ProjectConfig) []string {
	specs := g.catalog.Resolve(cfg.FrontendType, catalog.ResolveOptions{
		IncludeAuth:    cfg.IncludeAuth,
		IncludeAlembic: cfg.IncludeAlembic,
		IncludeSSE:     cfg.IncludeSSE,
	})
	specs = append(specs, g.catalog.DeploymentFiles(cfg.ProjectType, cfg.FrontendType)...)

	out := make([]string, 0, len(specs)+1)
	for _, spec := range specs {
		out = append(out, relDest(cfg, spec))
	}
	out = append(out, defs.ScaffoldMetadata)
	return out
}

// Validate reloads a project's configuration from its metadata,
// re-resolves the catalog file list for that configuration, and returns
// the expected paths missing from disk. Presence only, not content; an
// empty list means the project is complete. Missing files are reported
// as data, not as an error.
func (g *Generator) Validate(projectDir string) ([]string, error) {
	cfg, err := metadata.FromExisting(projectDir)
	if err != nil {
		return nil, err
	}

	missing := []string{}
	for _, rel := range g.ExpectedFiles(cfg) {
		if _, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(rel))); err != nil {
			missing = append(missing, rel)
		}
	}
	return missing, nil
}
