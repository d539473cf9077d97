package catalog

import "github.com/stackgen-cli/stackgen/internal/config"

// Combination describes one supported (project_type, frontend_type)
// pairing for template listings.
type Combination struct {
	ProjectType  config.ProjectType  `json:"project_type" yaml:"project_type"`
	FrontendType config.FrontendType `json:"frontend_type" yaml:"frontend_type"`
	DeployTarget string              `json:"deploy_target" yaml:"deploy_target"`
	Structure    string              `json:"structure" yaml:"structure"`
	Description  string              `json:"description" yaml:"description"`
}

const (
	structureMultiRepo  = "2 separate git repos in 1 workspace"
	structureSingleRepo = "single git repo"
)

func newCombinations() []Combination {
	return []Combination{
		{
			ProjectType:  config.ProjectTypeWork,
			FrontendType: config.FrontendReact,
			DeployTarget: config.ProjectTypeWork.DeployTarget(),
			Structure:    structureMultiRepo,
			Description:  "FastAPI API + React SPA, each in its own repo linked to Azure",
		},
		{
			ProjectType:  config.ProjectTypeWork,
			FrontendType: config.FrontendHTMX,
			DeployTarget: config.ProjectTypeWork.DeployTarget(),
			Structure:    structureSingleRepo,
			Description:  "FastAPI with HTMX templates, single repo linked to Azure",
		},
		{
			ProjectType:  config.ProjectTypePersonal,
			FrontendType: config.FrontendReact,
			DeployTarget: config.ProjectTypePersonal.DeployTarget(),
			Structure:    structureMultiRepo,
			Description:  "FastAPI API + React SPA deployed via a Render blueprint",
		},
		{
			ProjectType:  config.ProjectTypePersonal,
			FrontendType: config.FrontendHTMX,
			DeployTarget: config.ProjectTypePersonal.DeployTarget(),
			Structure:    structureSingleRepo,
			Description:  "FastAPI with HTMX templates deployed via a Render blueprint",
		},
	}
}

// Combinations returns every supported (project_type, frontend_type)
// pairing. The slice is a copy; the catalog stays immutable.
func (c *Catalog) Combinations() []Combination {
	out := make([]Combination, len(c.combos))
	copy(out, c.combos)
	return out
}

// OptionDefaults are the documented defaults reported by template
// listings, matching what NewProjectConfig applies.
type OptionDefaults struct {
	IncludeAuth    bool `json:"include_auth" yaml:"include_auth"`
	IncludeAlembic bool `json:"include_alembic" yaml:"include_alembic"`
	IncludeSSE     bool `json:"include_sse" yaml:"include_sse"`
	IncludeRedis   bool `json:"include_redis" yaml:"include_redis"`
	APIPort        int  `json:"api_port" yaml:"api_port"`
	FrontendPort   int  `json:"frontend_port" yaml:"frontend_port"`
}

// Defaults returns the default option values for new projects.
func (c *Catalog) Defaults() OptionDefaults {
	return OptionDefaults{
		IncludeAuth:    config.DefaultIncludeAuth,
		IncludeAlembic: config.DefaultIncludeAlembic,
		IncludeSSE:     config.DefaultIncludeSSE,
		IncludeRedis:   config.DefaultIncludeRedis,
		APIPort:        config.DefaultAPIPort,
		FrontendPort:   config.DefaultFrontendPort,
	}
}
