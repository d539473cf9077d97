// Package component adds generated artifacts to an existing scaffolded
// project: SQLAlchemy models, Pydantic schemas and FastAPI routers. The
// project configuration is reconstructed from the persisted metadata
// file, never taken from the caller, and a batch either writes all of
// its files or none of them.
package component

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/metadata"
)

// artifact is one generated file awaiting write.
type artifact struct {
	rel     string
	content string
}

// Add generates the artifacts for one component inside projectDir,
// which must be a scaffolded project. It returns the created paths,
// slash-separated, relative to projectDir. If any target path already
// exists, nothing is written and ErrNameCollision is returned.
func Add(projectDir string, cc config.ComponentConfig, cat *catalog.Catalog) ([]string, error) {
	return add(projectDir, cc, cat, os.WriteFile)
}

// add carries the injectable file writer, so tests can fail a write
// partway through a batch.
func add(projectDir string, cc config.ComponentConfig, cat *catalog.Catalog,
	writeFile func(name string, data []byte, perm os.FileMode) error) ([]string, error) {

	cfg, err := metadata.FromExisting(projectDir)
	if err != nil {
		return nil, err
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}

	artifacts, err := plan(cfg, cc, cat)
	if err != nil {
		return nil, err
	}

	// Collision check over the whole batch before the first write.
	for _, a := range artifacts {
		dest := filepath.Join(projectDir, filepath.FromSlash(a.rel))
		if _, err := os.Stat(dest); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrNameCollision, a.rel)
		}
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		dest := filepath.Join(projectDir, filepath.FromSlash(a.rel))
		if err := writeArtifact(dest, a.content, writeFile); err != nil {
			rollback(projectDir, append(written, a.rel))
			return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailure, a.rel, err)
		}
		written = append(written, a.rel)
	}

	slog.Debug("component added",
		"type", cc.Type, "resource", cc.ResourceName, "files", len(written))
	return written, nil
}

// plan builds the artifact batch for a component without touching the
// filesystem.
func plan(cfg *config.ProjectConfig, cc config.ComponentConfig, cat *catalog.Catalog) ([]artifact, error) {
	apiRoot := cfg.APIDirName()
	resource := cc.ResourceName

	modelAndSchema := func() ([]artifact, error) {
		model, err := buildModel(cat, resource, cc.Fields)
		if err != nil {
			return nil, err
		}
		schema, err := buildSchema(cat, resource, cc.Fields)
		if err != nil {
			return nil, err
		}
		return []artifact{
			{rel: apiPath(apiRoot, "app/models", resource), content: model},
			{rel: apiPath(apiRoot, "app/schemas", resource), content: schema},
		}, nil
	}

	switch cc.Type {
	case config.ComponentDBModel:
		return modelAndSchema()

	case config.ComponentAPIRouter:
		var artifacts []artifact
		withModel := len(cc.Fields) > 0
		if withModel {
			ms, err := modelAndSchema()
			if err != nil {
				return nil, err
			}
			artifacts = ms
		}
		artifacts = append(artifacts, artifact{
			rel:     apiPath(apiRoot, "app/routers", resource),
			content: buildRouter(resource, withModel),
		})
		return artifacts, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedComponent, cc.Type)
	}
}

// apiPath joins a generated file path under the API root. The root is
// empty for single-repo layouts.
func apiPath(apiRoot, dir, resource string) string {
	return path.Join(apiRoot, dir, resource+".py")
}

func writeArtifact(dest, content string,
	writeFile func(name string, data []byte, perm os.FileMode) error) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return writeFile(dest, []byte(content), 0o644)
}

// rollback deletes the files a failed batch wrote, plus any directories
// the batch created that are now empty. The failed artifact's path is
// included so its freshly created parent directory is pruned too.
func rollback(projectDir string, rels []string) {
	for _, rel := range rels {
		dest := filepath.Join(projectDir, filepath.FromSlash(rel))
		_ = os.Remove(dest)
		pruneEmptyDirs(projectDir, filepath.Dir(dest))
	}
}

// pruneEmptyDirs removes dir and its parents, stopping at root or at
// the first non-empty directory.
func pruneEmptyDirs(root, dir string) {
	root = filepath.Clean(root)
	for dir != root && strings.HasPrefix(dir, root+string(filepath.Separator)) {
		// os.Remove refuses non-empty directories.
		if os.Remove(dir) != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
