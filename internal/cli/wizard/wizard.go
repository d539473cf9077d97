// Package wizard is the interactive setup flow for new projects. It
// fills in whatever the caller left unset on the ProjectConfig and
// leaves already-provided values alone.
package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/stackgen-cli/stackgen/internal/config"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard: cancelled")

// Run asks for every ProjectConfig value the caller has not provided.
// Each question runs as its own form so earlier answers can shape later
// questions.
func Run(cfg *config.ProjectConfig) (*config.ProjectConfig, error) {
	steps := []func(*config.ProjectConfig) (huh.Field, func()){
		askName,
		askDescription,
		askProjectType,
		askFrontend,
		askAuth,
		askAlembic,
		askSSE,
		askRedis,
		askAPIPort,
		askFrontendPort,
	}

	for _, step := range steps {
		field, commit := step(cfg)
		if field == nil {
			continue
		}
		form := huh.NewForm(huh.NewGroup(field)).WithTheme(huh.ThemeCharm())
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard: %w", err)
		}
		commit()
	}

	return cfg, nil
}

func askName(cfg *config.ProjectConfig) (huh.Field, func()) {
	if cfg.Name != "" {
		return nil, nil
	}
	value := ""
	field := huh.NewInput().
		Title("Project name").
		Description("Lowercase letters, digits and hyphens, e.g. my-project.").
		Placeholder("my-project").
		Validate(func(s string) error {
			trial := *cfg
			trial.Name = s
			trial.ProjectType = config.ProjectTypePersonal
			trial.FrontendType = config.FrontendHTMX
			trial.ApplyDefaults()
			return trial.Validate()
		}).
		Value(&value)
	return field, func() { cfg.Name = value }
}

func askDescription(cfg *config.ProjectConfig) (huh.Field, func()) {
	if cfg.Description != "" {
		return nil, nil
	}
	value := ""
	field := huh.NewInput().
		Title("Description").
		Description("One line about the project. Press Enter to skip.").
		Value(&value)
	return field, func() { cfg.Description = value }
}

func askProjectType(cfg *config.ProjectConfig) (huh.Field, func()) {
	if cfg.ProjectType != "" {
		return nil, nil
	}
	value := string(config.ProjectTypePersonal)
	field := huh.NewSelect[string]().
		Title("Deployment target").
		Options(
			huh.NewOption("Personal - "+config.ProjectTypePersonal.DeployTarget(),
				string(config.ProjectTypePersonal)),
			huh.NewOption("Work - "+config.ProjectTypeWork.DeployTarget(),
				string(config.ProjectTypeWork)),
		).
		Value(&value)
	return field, func() { cfg.ProjectType = config.ProjectType(value) }
}

func askFrontend(cfg *config.ProjectConfig) (huh.Field, func()) {
	if cfg.FrontendType != "" {
		return nil, nil
	}
	value := string(config.FrontendReact)
	field := huh.NewSelect[string]().
		Title("Frontend stack").
		Options(
			huh.NewOption("React - Vite + TypeScript SPA in its own repo",
				string(config.FrontendReact)),
			huh.NewOption("HTMX - server-rendered pages in a single repo",
				string(config.FrontendHTMX)),
		).
		Value(&value)
	return field, func() { cfg.FrontendType = config.FrontendType(value) }
}

func askAuth(cfg *config.ProjectConfig) (huh.Field, func()) {
	value := cfg.IncludeAuth
	field := huh.NewConfirm().
		Title("Include JWT authentication?").
		Value(&value)
	return field, func() { cfg.IncludeAuth = value }
}

func askAlembic(cfg *config.ProjectConfig) (huh.Field, func()) {
	value := cfg.IncludeAlembic
	field := huh.NewConfirm().
		Title("Include Alembic migrations?").
		Value(&value)
	return field, func() { cfg.IncludeAlembic = value }
}

func askSSE(cfg *config.ProjectConfig) (huh.Field, func()) {
	value := cfg.IncludeSSE
	field := huh.NewConfirm().
		Title("Include a server-sent events endpoint?").
		Value(&value)
	return field, func() { cfg.IncludeSSE = value }
}

func askRedis(cfg *config.ProjectConfig) (huh.Field, func()) {
	value := cfg.IncludeRedis
	field := huh.NewConfirm().
		Title("Include a Redis service in docker compose?").
		Value(&value)
	return field, func() { cfg.IncludeRedis = value }
}

func askAPIPort(cfg *config.ProjectConfig) (huh.Field, func()) {
	value := strconv.Itoa(cfg.APIPort)
	if cfg.APIPort == 0 {
		value = strconv.Itoa(config.DefaultAPIPort)
	}
	field := huh.NewInput().
		Title("Local API port").
		Validate(validatePort).
		Value(&value)
	return field, func() {
		cfg.APIPort, _ = strconv.Atoi(value)
	}
}

// askFrontendPort only applies to the multi-repo layout; single-repo
// projects serve the frontend from the API port.
func askFrontendPort(cfg *config.ProjectConfig) (huh.Field, func()) {
	if cfg.FrontendType != config.FrontendReact {
		return nil, nil
	}
	value := strconv.Itoa(cfg.FrontendPort)
	if cfg.FrontendPort == 0 {
		value = strconv.Itoa(config.DefaultFrontendPort)
	}
	field := huh.NewInput().
		Title("Local frontend port").
		Validate(func(s string) error {
			if err := validatePort(s); err != nil {
				return err
			}
			if n, _ := strconv.Atoi(s); n == cfg.APIPort {
				return fmt.Errorf("frontend port must differ from the API port")
			}
			return nil
		}).
		Value(&value)
	return field, func() {
		cfg.FrontendPort, _ = strconv.Atoi(value)
	}
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
