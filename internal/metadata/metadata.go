// Package metadata persists and reloads the scaffold metadata file
// written at every generated project's root. The file is the canonical
// record of the ProjectConfig; all later operations against a project
// reconstruct the configuration from it instead of re-deriving it from
// caller input.
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/defs"
	"github.com/stackgen-cli/stackgen/pkg/version"
)

// SchemaVersion is the version of the metadata document this build
// writes. Readers accept any document whose major version matches;
// unknown fields from newer minor versions are ignored, missing
// optional fields from older versions get their defaults.
const SchemaVersion = "1.0.0"

var (
	// ErrNotAScaffoldedProject indicates the metadata file is missing
	// or unparseable where one is required.
	ErrNotAScaffoldedProject = errors.New("metadata: not a scaffolded project")

	// ErrUnsupportedSchemaVersion indicates metadata written by an
	// incompatible (newer major) version of the tool.
	ErrUnsupportedSchemaVersion = errors.New("metadata: unsupported schema version")
)

// Document is the on-disk shape of the scaffold metadata file. It
// embeds the full ProjectConfig, including derived fields, plus
// provenance fields about the scaffold itself.
type Document struct {
	SchemaVersion    string `json:"schema_version"`
	GeneratorVersion string `json:"generator_version"`
	CreatedAt        string `json:"created_at"`

	config.ProjectConfig
}

// Render produces the serialized metadata document for a config.
// Rendering is separated from writing so the generation engine can
// emit the document through the same batch writer as every other file.
func Render(cfg *config.ProjectConfig, createdAt time.Time) ([]byte, error) {
	doc := Document{
		SchemaVersion:    SchemaVersion,
		GeneratorVersion: version.GetVersion(),
		CreatedAt:        createdAt.UTC().Format(time.RFC3339),
		ProjectConfig:    *cfg,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return buf.Bytes(), nil
}

// Read loads and verifies the metadata document from a project root.
func Read(projectDir string) (*Document, error) {
	path := filepath.Join(projectDir, defs.ScaffoldMetadata)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no %s found in %s",
				ErrNotAScaffoldedProject, defs.ScaffoldMetadata, projectDir)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrNotAScaffoldedProject, path, err)
	}

	// Structural check first so corrupt documents fail with a message
	// naming the violated constraint rather than a zero-value config.
	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotAScaffoldedProject, path, err)
	}

	// Start from defaults: fields absent from older documents keep
	// their documented default values rather than failing.
	doc := &Document{ProjectConfig: *config.NewProjectConfig()}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNotAScaffoldedProject, path, err)
	}

	if err := checkSchemaVersion(doc.SchemaVersion); err != nil {
		return nil, err
	}

	return doc, nil
}

// FromExisting reconstructs the ProjectConfig of a scaffolded project
// from its persisted metadata.
func FromExisting(projectDir string) (*config.ProjectConfig, error) {
	doc, err := Read(projectDir)
	if err != nil {
		return nil, err
	}
	cfg := doc.ProjectConfig
	return &cfg, nil
}

// checkSchemaVersion rejects documents written by a newer major version
// of the tool; anything at or below the current major parses with
// defaults for missing fields.
func checkSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing schema_version", ErrNotAScaffoldedProject)
	}
	docVer, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: schema_version %q: %v", ErrNotAScaffoldedProject, v, err)
	}
	current := semver.MustParse(SchemaVersion)
	if docVer.Major() > current.Major() {
		return fmt.Errorf("%w: document version %s, this build supports up to %d.x",
			ErrUnsupportedSchemaVersion, v, current.Major())
	}
	return nil
}
