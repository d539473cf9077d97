package generator

import (
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/defs"
)

// RenderContext provides data for template rendering during project
// generation. It is built exactly once per generation call, as a pure
// function of the configuration, and passed unchanged to every template
// so all rendered files agree on names, ports, credentials and flags.
type RenderContext struct {
	ProjectName  string
	ProjectType  string
	FrontendType string
	Description  string

	DBName     string
	DBUser     string
	DBPassword string

	IncludeAuth    bool
	IncludeAlembic bool
	IncludeSSE     bool
	IncludeRedis   bool

	APIPort      int
	FrontendPort int

	IsMultiRepo bool
	PackageName string

	// Directory names for the multi-repo layout, used by templates
	// that reference the sibling directories (compose, README, CI).
	APIDir      string
	FrontendDir string
}

// NewRenderContext derives the template context from a resolved
// configuration. No I/O.
func NewRenderContext(cfg *config.ProjectConfig) *RenderContext {
	return &RenderContext{
		ProjectName:    cfg.Name,
		ProjectType:    string(cfg.ProjectType),
		FrontendType:   string(cfg.FrontendType),
		Description:    cfg.Description,
		DBName:         cfg.DBName,
		DBUser:         cfg.DBUser,
		DBPassword:     cfg.DBPassword,
		IncludeAuth:    cfg.IncludeAuth,
		IncludeAlembic: cfg.IncludeAlembic,
		IncludeSSE:     cfg.IncludeSSE,
		IncludeRedis:   cfg.IncludeRedis,
		APIPort:        cfg.APIPort,
		FrontendPort:   cfg.FrontendPort,
		IsMultiRepo:    cfg.IsMultiRepo(),
		PackageName:    cfg.PackageName(),
		APIDir:         cfg.Name + defs.APIDirSuffix,
		FrontendDir:    cfg.FrontendDirName(),
	}
}
