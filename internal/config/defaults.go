package config

import (
	"strings"

	"github.com/google/uuid"
)

// Default values for optional ProjectConfig fields.
const (
	DefaultAPIPort      = 8000
	DefaultFrontendPort = 3000
	DefaultDBUser       = "app"

	DefaultIncludeAuth    = true
	DefaultIncludeAlembic = true
	DefaultIncludeSSE     = false
	DefaultIncludeRedis   = false
)

// NewProjectConfig returns a ProjectConfig with all optional fields set
// to their defaults. Callers fill in the identity and shape fields and
// then call ApplyDefaults to resolve the derived ones.
func NewProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		IncludeAuth:    DefaultIncludeAuth,
		IncludeAlembic: DefaultIncludeAlembic,
		IncludeSSE:     DefaultIncludeSSE,
		IncludeRedis:   DefaultIncludeRedis,
		APIPort:        DefaultAPIPort,
		FrontendPort:   DefaultFrontendPort,
	}
}

// ApplyDefaults fills zero-valued optional fields. The database name
// defaults to the project name with underscores, the user to a fixed
// role name, and the password to a freshly generated credential. It is
// called once at scaffold time; reloads from metadata see the already
// resolved values.
func (c *ProjectConfig) ApplyDefaults() {
	if c.DBName == "" {
		c.DBName = strings.ReplaceAll(c.Name, "-", "_")
	}
	if c.DBUser == "" {
		c.DBUser = DefaultDBUser
	}
	if c.DBPassword == "" {
		c.DBPassword = uuid.NewString()
	}
	if c.APIPort == 0 {
		c.APIPort = DefaultAPIPort
	}
	if c.FrontendPort == 0 {
		c.FrontendPort = DefaultFrontendPort
	}
}
