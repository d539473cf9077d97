// Package config defines the request models for scaffolding operations:
// ProjectConfig describes a new project, ComponentConfig describes an
// artifact added to an existing project. It applies defaults, validates
// field values, and supports loading a ProjectConfig from a YAML file.
package config

import (
	"strings"

	"github.com/stackgen-cli/stackgen/internal/defs"
)

// ProjectType selects the deployment target for a scaffolded project.
type ProjectType string

const (
	// ProjectTypeWork deploys to Azure App Service via GitHub Actions.
	ProjectTypeWork ProjectType = "work"
	// ProjectTypePersonal deploys to Render.com via a render.yaml blueprint.
	ProjectTypePersonal ProjectType = "personal"
)

// IsValid reports whether the project type is a supported value.
func (t ProjectType) IsValid() bool {
	return t == ProjectTypeWork || t == ProjectTypePersonal
}

// DeployTarget returns a human-readable deployment target description.
func (t ProjectType) DeployTarget() string {
	if t == ProjectTypeWork {
		return "Azure (App Service + Static Web Apps)"
	}
	return "Render.com (Blueprint)"
}

// FrontendType selects the frontend stack and the repository layout.
type FrontendType string

const (
	// FrontendReact scaffolds a Vite + TypeScript SPA in its own
	// sibling directory (multi-repo layout).
	FrontendReact FrontendType = "react"
	// FrontendHTMX scaffolds server-rendered HTMX pages inside the API
	// directory (single-repo layout).
	FrontendHTMX FrontendType = "htmx"
)

// IsValid reports whether the frontend type is a supported value.
func (t FrontendType) IsValid() bool {
	return t == FrontendReact || t == FrontendHTMX
}

// ProjectConfig is the canonical description of a scaffolded project.
// It is immutable once a project has been generated: later operations
// reconstruct it from the persisted metadata file, never from caller input.
type ProjectConfig struct {
	Name         string       `yaml:"name" json:"name"`
	ProjectType  ProjectType  `yaml:"project_type" json:"project_type"`
	FrontendType FrontendType `yaml:"frontend_type" json:"frontend_type"`
	Description  string       `yaml:"description" json:"description"`

	// DBName defaults to the project name with hyphens replaced by
	// underscores. DBUser and DBPassword are generated credentials
	// persisted in metadata so every rendered file agrees on them.
	DBName     string `yaml:"db_name" json:"db_name"`
	DBUser     string `yaml:"db_user" json:"db_user"`
	DBPassword string `yaml:"db_password" json:"db_password"`

	IncludeAuth    bool `yaml:"include_auth" json:"include_auth"`
	IncludeAlembic bool `yaml:"include_alembic" json:"include_alembic"`
	IncludeSSE     bool `yaml:"include_sse" json:"include_sse"`
	IncludeRedis   bool `yaml:"include_redis" json:"include_redis"`

	APIPort      int `yaml:"api_port" json:"api_port"`
	FrontendPort int `yaml:"frontend_port" json:"frontend_port"`

	// UseCurrentDir scaffolds directly into the output directory, which
	// must already exist and be empty, instead of creating a new
	// subdirectory named after the project.
	UseCurrentDir bool `yaml:"use_current_dir" json:"use_current_dir"`
}

// IsMultiRepo reports whether the project uses the two-directory layout
// (API and frontend as siblings). True iff the frontend is react.
func (c *ProjectConfig) IsMultiRepo() bool {
	return c.FrontendType == FrontendReact
}

// PackageName returns the Python package name derived from the project
// name: hyphens become underscores.
func (c *ProjectConfig) PackageName() string {
	return strings.ReplaceAll(c.Name, "-", "_")
}

// APIDirName returns the name of the API directory relative to the
// project root. Empty for single-repo layouts, where the API lives at
// the root itself.
func (c *ProjectConfig) APIDirName() string {
	if c.IsMultiRepo() {
		return c.Name + defs.APIDirSuffix
	}
	return ""
}

// FrontendDirName returns the name of the frontend directory relative
// to the project root (react projects only).
func (c *ProjectConfig) FrontendDirName() string {
	return c.Name + defs.FrontendDirSuffix
}

// ComponentType identifies a kind of generated component.
type ComponentType string

const (
	ComponentAPIRouter ComponentType = "api_router"
	ComponentDBModel   ComponentType = "db_model"

	// Reserved kinds. Requests for these are rejected as unsupported
	// rather than silently ignored.
	ComponentFrontendPage  ComponentType = "frontend_page"
	ComponentGitHubAction  ComponentType = "github_action"
	ComponentDockerService ComponentType = "docker_service"
)

// Field is one (name, logical type) pair of a component definition.
// Order is preserved in the generated artifacts.
type Field struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// ComponentConfig describes one artifact to add to an existing project.
type ComponentConfig struct {
	Type ComponentType `yaml:"component_type" json:"component_type"`

	// ResourceName is a singular noun; plural route paths, class names
	// and the table name are derived from it.
	ResourceName string `yaml:"resource_name" json:"resource_name"`

	// Fields may be empty, which produces a minimal skeleton.
	Fields []Field `yaml:"fields" json:"fields"`
}
