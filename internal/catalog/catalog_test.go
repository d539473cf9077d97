package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stackgen-cli/stackgen/internal/config"
)

func destSet(specs []FileSpec) map[string]FileSpec {
	out := make(map[string]FileSpec, len(specs))
	for _, s := range specs {
		out[s.Dest] = s
	}
	return out
}

func TestResolve(t *testing.T) {
	cat := New()
	allOpts := ResolveOptions{IncludeAuth: true, IncludeAlembic: true, IncludeSSE: true}

	t.Run("react_includes_frontend_files", func(t *testing.T) {
		specs := destSet(cat.Resolve(config.FrontendReact, allOpts))
		for _, dest := range []string{"package.json", "vite.config.ts", "src/App.tsx", "nginx.conf"} {
			if _, ok := specs[dest]; !ok {
				t.Errorf("react resolution missing %q", dest)
			}
		}
		if _, ok := specs["app/templates/base.html"]; ok {
			t.Error("react resolution must not include htmx templates")
		}
	})

	t.Run("htmx_includes_templates_under_api_root", func(t *testing.T) {
		specs := destSet(cat.Resolve(config.FrontendHTMX, allOpts))
		for _, dest := range []string{
			"app/templates/base.html",
			"app/templates/partials/user_list.html",
			"app/static/css/style.css",
			"app/routers/pages.py",
		} {
			spec, ok := specs[dest]
			if !ok {
				t.Errorf("htmx resolution missing %q", dest)
				continue
			}
			if spec.Root != RootAPI {
				t.Errorf("%q should be rooted under the API dir", dest)
			}
		}
		if _, ok := specs["package.json"]; ok {
			t.Error("htmx resolution must not include react files")
		}
	})

	t.Run("feature_flags_gate_file_groups", func(t *testing.T) {
		specs := destSet(cat.Resolve(config.FrontendHTMX, ResolveOptions{}))
		for _, dest := range []string{"alembic.ini", "app/auth/jwt.py", "app/routers/sse.py"} {
			if _, ok := specs[dest]; ok {
				t.Errorf("%q should be excluded when its flag is off", dest)
			}
		}

		specs = destSet(cat.Resolve(config.FrontendHTMX, allOpts))
		for _, dest := range []string{"alembic.ini", "app/auth/jwt.py", "app/routers/sse.py"} {
			if _, ok := specs[dest]; !ok {
				t.Errorf("%q should be included when its flag is on", dest)
			}
		}
	})

	t.Run("htmx_html_files_copied_raw", func(t *testing.T) {
		// The HTML templates carry runtime Jinja markup and must never
		// pass through the Go template renderer.
		for _, spec := range cat.Resolve(config.FrontendHTMX, allOpts) {
			if strings.HasPrefix(spec.Dest, "app/templates/") &&
				strings.HasSuffix(spec.Template, ".tmpl") {
				t.Errorf("%q must be a raw copy, got template %q", spec.Dest, spec.Template)
			}
		}
	})

	t.Run("resolution_is_a_fresh_slice", func(t *testing.T) {
		a := cat.Resolve(config.FrontendReact, allOpts)
		a[0].Dest = "mutated"
		b := cat.Resolve(config.FrontendReact, allOpts)
		if b[0].Dest == "mutated" {
			t.Error("mutating a resolution must not affect later calls")
		}
	})
}

func TestDeploymentFiles(t *testing.T) {
	cat := New()

	t.Run("work_react_gets_api_and_frontend_workflows", func(t *testing.T) {
		specs := cat.DeploymentFiles(config.ProjectTypeWork, config.FrontendReact)
		if len(specs) != 3 {
			t.Fatalf("expected 3 workflow files, got %d", len(specs))
		}
	})

	t.Run("work_htmx_gets_api_workflow_only", func(t *testing.T) {
		specs := cat.DeploymentFiles(config.ProjectTypeWork, config.FrontendHTMX)
		if len(specs) != 1 || specs[0].Dest != ".github/workflows/ci.yml" {
			t.Fatalf("unexpected specs: %+v", specs)
		}
	})

	t.Run("personal_gets_render_blueprint", func(t *testing.T) {
		for _, fe := range []config.FrontendType{config.FrontendReact, config.FrontendHTMX} {
			specs := cat.DeploymentFiles(config.ProjectTypePersonal, fe)
			if len(specs) != 1 || specs[0].Dest != "render.yaml" {
				t.Fatalf("%s: unexpected specs: %+v", fe, specs)
			}
		}
	})
}

func TestFieldType(t *testing.T) {
	cat := New()

	t.Run("known_types_translate", func(t *testing.T) {
		cases := []struct {
			logical string
			column  string
			schema  string
		}{
			{"str", "String", "str"},
			{"int", "Integer", "int"},
			{"bool", "Boolean", "bool"},
			{"datetime", "DateTime", "datetime"},
			{"uuid", "Uuid", "UUID"},
		}
		for _, tc := range cases {
			pair, err := cat.FieldType(tc.logical)
			if err != nil {
				t.Errorf("%s: %v", tc.logical, err)
				continue
			}
			if pair.Column != tc.column || pair.Schema != tc.schema {
				t.Errorf("%s: got %+v", tc.logical, pair)
			}
		}
	})

	t.Run("lookup_is_case_insensitive", func(t *testing.T) {
		if _, err := cat.FieldType("DateTime"); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown_type_is_an_error", func(t *testing.T) {
		_, err := cat.FieldType("decimal")
		if !errors.Is(err, ErrUnknownFieldType) {
			t.Fatalf("expected ErrUnknownFieldType, got %v", err)
		}
		if !strings.Contains(err.Error(), "decimal") {
			t.Errorf("error should name the unknown type: %v", err)
		}
	})
}

func TestCombinations(t *testing.T) {
	cat := New()
	combos := cat.Combinations()
	if len(combos) != 4 {
		t.Fatalf("expected 4 combinations, got %d", len(combos))
	}

	seen := map[string]bool{}
	for _, combo := range combos {
		seen[string(combo.ProjectType)+"/"+string(combo.FrontendType)] = true
		if combo.DeployTarget == "" || combo.Structure == "" || combo.Description == "" {
			t.Errorf("combination %+v has empty display fields", combo)
		}
	}
	for _, key := range []string{"work/react", "work/htmx", "personal/react", "personal/htmx"} {
		if !seen[key] {
			t.Errorf("missing combination %s", key)
		}
	}
}
