package wizard

import (
	"testing"

	"github.com/stackgen-cli/stackgen/internal/config"
)

func TestStepGating(t *testing.T) {
	t.Run("preset_values_skip_their_questions", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		cfg.Name = "demo"
		cfg.Description = "x"
		cfg.ProjectType = config.ProjectTypeWork
		cfg.FrontendType = config.FrontendHTMX

		if field, _ := askName(cfg); field != nil {
			t.Error("name question should be skipped when the name is set")
		}
		if field, _ := askDescription(cfg); field != nil {
			t.Error("description question should be skipped when set")
		}
		if field, _ := askProjectType(cfg); field != nil {
			t.Error("project type question should be skipped when set")
		}
		if field, _ := askFrontend(cfg); field != nil {
			t.Error("frontend question should be skipped when set")
		}
	})

	t.Run("unset_values_get_questions", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		if field, _ := askName(cfg); field == nil {
			t.Error("missing name should be asked")
		}
		if field, _ := askProjectType(cfg); field == nil {
			t.Error("missing project type should be asked")
		}
	})

	t.Run("feature_flags_always_asked", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		if field, _ := askSSE(cfg); field == nil {
			t.Error("sse question should always run")
		}
		if field, _ := askRedis(cfg); field == nil {
			t.Error("redis question should always run")
		}
	})

	t.Run("frontend_port_only_asked_for_react", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		cfg.FrontendType = config.FrontendHTMX
		if field, _ := askFrontendPort(cfg); field != nil {
			t.Error("single-repo layout has no frontend port question")
		}

		cfg.FrontendType = config.FrontendReact
		if field, _ := askFrontendPort(cfg); field == nil {
			t.Error("react layout should ask for the frontend port")
		}
	})
}

func TestStepCommits(t *testing.T) {
	t.Run("port_commits_keep_defaults_when_unedited", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		cfg.FrontendType = config.FrontendReact

		_, commit := askAPIPort(cfg)
		commit()
		if cfg.APIPort != config.DefaultAPIPort {
			t.Errorf("APIPort = %d, want default %d", cfg.APIPort, config.DefaultAPIPort)
		}

		_, commit = askFrontendPort(cfg)
		commit()
		if cfg.FrontendPort != config.DefaultFrontendPort {
			t.Errorf("FrontendPort = %d, want default %d", cfg.FrontendPort, config.DefaultFrontendPort)
		}
	})

	t.Run("flag_commits_keep_current_values_when_unedited", func(t *testing.T) {
		cfg := config.NewProjectConfig()
		cfg.IncludeSSE = true

		_, commit := askSSE(cfg)
		commit()
		if !cfg.IncludeSSE {
			t.Error("unedited confirm should keep the current value")
		}
	})
}

func TestValidatePort(t *testing.T) {
	for _, bad := range []string{"", "abc", "0", "-1", "70000"} {
		if validatePort(bad) == nil {
			t.Errorf("%q should be rejected", bad)
		}
	}
	for _, good := range []string{"1", "8000", "65535"} {
		if err := validatePort(good); err != nil {
			t.Errorf("%q should be accepted: %v", good, err)
		}
	}
}
