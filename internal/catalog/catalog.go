// Package catalog is the static mapping from a project shape
// (frontend type plus feature flags) to the set of template files that
// make up a scaffolded project. It is built once at process start,
// never mutated, and shared by reference between the generation engine
// and the component renderers.
package catalog

import (
	"github.com/stackgen-cli/stackgen/internal/config"
)

// Root identifies which directory a generated file is rooted under.
// The generation engine maps roots to concrete directories once per
// call, depending on the repo layout.
type Root int

const (
	// RootWorkspace is the project root itself (workspace-level files).
	RootWorkspace Root = iota
	// RootAPI is the API directory: "{name}-api" for multi-repo
	// layouts, the project root for single-repo layouts.
	RootAPI
	// RootFrontend is the "{name}-frontend" directory (react only).
	RootFrontend
)

// FileSpec maps one template source to one destination path.
type FileSpec struct {
	// Template is the source path in the embedded template FS. Paths
	// ending in ".tmpl" are rendered; others are copied verbatim. An
	// empty Template produces an empty file (package markers, .gitkeep).
	Template string

	// Dest is the destination path, slash-separated, relative to Root.
	Dest string

	// Root selects the directory tree the destination is rooted under.
	Root Root
}

// ResolveOptions are the feature flags that change the resolved file set.
type ResolveOptions struct {
	IncludeAuth    bool
	IncludeAlembic bool
	IncludeSSE     bool
}

// Catalog is the immutable template lookup table.
type Catalog struct {
	common  []FileSpec
	api     []FileSpec
	auth    []FileSpec
	alembic []FileSpec
	sse     []FileSpec
	react   []FileSpec
	htmx    []FileSpec
	azure   []FileSpec
	azureFE []FileSpec
	render  []FileSpec
	typeMap map[string]TypePair
	combos  []Combination
}

// New builds the catalog. The result is read-only; callers share one
// instance per process.
func New() *Catalog {
	return &Catalog{
		common: []FileSpec{
			{Template: "common/readme.md.tmpl", Dest: "README.md", Root: RootWorkspace},
			{Template: "claude/claude.md.tmpl", Dest: "CLAUDE.md", Root: RootWorkspace},
			{Template: "common/env.example.tmpl", Dest: ".env.example", Root: RootWorkspace},
			{Template: "common/makefile.tmpl", Dest: "Makefile", Root: RootWorkspace},
			{Template: "docker/docker-compose.yml.tmpl", Dest: "docker-compose.yml", Root: RootWorkspace},
			{Template: "docker/docker-compose.override.yml.tmpl", Dest: "docker-compose.override.yml", Root: RootWorkspace},
		},
		api: []FileSpec{
			{Template: "common/gitignore.tmpl", Dest: ".gitignore", Root: RootAPI},
			{Template: "api/pyproject.toml.tmpl", Dest: "pyproject.toml", Root: RootAPI},
			{Template: "api/dockerfile.tmpl", Dest: "Dockerfile", Root: RootAPI},
			{Template: "api/startup.sh.tmpl", Dest: "startup.sh", Root: RootAPI},
			{Template: "", Dest: "app/__init__.py", Root: RootAPI},
			{Template: "api/app/main.py.tmpl", Dest: "app/main.py", Root: RootAPI},
			{Template: "api/app/config.py.tmpl", Dest: "app/config.py", Root: RootAPI},
			{Template: "api/app/database.py.tmpl", Dest: "app/database.py", Root: RootAPI},
			{Template: "api/app/dependencies.py.tmpl", Dest: "app/dependencies.py", Root: RootAPI},
			{Template: "", Dest: "app/models/__init__.py", Root: RootAPI},
			{Template: "api/app/models/base.py.tmpl", Dest: "app/models/base.py", Root: RootAPI},
			{Template: "api/app/models/user.py.tmpl", Dest: "app/models/user.py", Root: RootAPI},
			{Template: "", Dest: "app/schemas/__init__.py", Root: RootAPI},
			{Template: "api/app/schemas/common.py.tmpl", Dest: "app/schemas/common.py", Root: RootAPI},
			{Template: "api/app/schemas/user.py.tmpl", Dest: "app/schemas/user.py", Root: RootAPI},
			{Template: "", Dest: "app/routers/__init__.py", Root: RootAPI},
			{Template: "api/app/routers/health.py.tmpl", Dest: "app/routers/health.py", Root: RootAPI},
			{Template: "api/app/routers/users.py.tmpl", Dest: "app/routers/users.py", Root: RootAPI},
			{Template: "", Dest: "tests/__init__.py", Root: RootAPI},
			{Template: "api/tests/conftest.py.tmpl", Dest: "tests/conftest.py", Root: RootAPI},
			{Template: "api/tests/test_health.py.tmpl", Dest: "tests/test_health.py", Root: RootAPI},
		},
		auth: []FileSpec{
			{Template: "", Dest: "app/auth/__init__.py", Root: RootAPI},
			{Template: "api/auth/jwt.py.tmpl", Dest: "app/auth/jwt.py", Root: RootAPI},
			{Template: "api/auth/routes.py.tmpl", Dest: "app/auth/routes.py", Root: RootAPI},
		},
		alembic: []FileSpec{
			{Template: "alembic/alembic.ini.tmpl", Dest: "alembic.ini", Root: RootAPI},
			{Template: "alembic/env.py.tmpl", Dest: "alembic/env.py", Root: RootAPI},
			{Template: "alembic/script.py.mako", Dest: "alembic/script.py.mako", Root: RootAPI},
			{Template: "", Dest: "alembic/versions/.gitkeep", Root: RootAPI},
		},
		sse: []FileSpec{
			{Template: "api/app/routers/sse.py.tmpl", Dest: "app/routers/sse.py", Root: RootAPI},
		},
		react: []FileSpec{
			{Template: "common/gitignore_frontend.tmpl", Dest: ".gitignore", Root: RootFrontend},
			{Template: "frontend/react/package.json.tmpl", Dest: "package.json", Root: RootFrontend},
			{Template: "frontend/react/vite.config.ts.tmpl", Dest: "vite.config.ts", Root: RootFrontend},
			{Template: "frontend/react/tsconfig.json.tmpl", Dest: "tsconfig.json", Root: RootFrontend},
			{Template: "frontend/react/tsconfig.node.json.tmpl", Dest: "tsconfig.node.json", Root: RootFrontend},
			{Template: "frontend/react/index.html.tmpl", Dest: "index.html", Root: RootFrontend},
			{Template: "frontend/react/dockerfile.tmpl", Dest: "Dockerfile", Root: RootFrontend},
			{Template: "frontend/react/nginx.conf.tmpl", Dest: "nginx.conf", Root: RootFrontend},
			{Template: "frontend/react/src/main.tsx.tmpl", Dest: "src/main.tsx", Root: RootFrontend},
			{Template: "frontend/react/src/app.tsx.tmpl", Dest: "src/App.tsx", Root: RootFrontend},
			{Template: "frontend/react/src/vite-env.d.ts", Dest: "src/vite-env.d.ts", Root: RootFrontend},
			{Template: "frontend/react/src/api/client.ts.tmpl", Dest: "src/api/client.ts", Root: RootFrontend},
			{Template: "frontend/react/src/pages/home.tsx.tmpl", Dest: "src/pages/Home.tsx", Root: RootFrontend},
			{Template: "frontend/react/src/components/layout.tsx.tmpl", Dest: "src/components/Layout.tsx", Root: RootFrontend},
			{Template: "frontend/react/src/styles/globals.css", Dest: "src/styles/globals.css", Root: RootFrontend},
		},
		htmx: []FileSpec{
			{Template: "frontend/htmx/base.html", Dest: "app/templates/base.html", Root: RootAPI},
			{Template: "frontend/htmx/index.html", Dest: "app/templates/index.html", Root: RootAPI},
			{Template: "frontend/htmx/partials/user_list.html", Dest: "app/templates/partials/user_list.html", Root: RootAPI},
			{Template: "frontend/htmx/partials/user_form.html", Dest: "app/templates/partials/user_form.html", Root: RootAPI},
			{Template: "frontend/htmx/style.css", Dest: "app/static/css/style.css", Root: RootAPI},
			{Template: "api/app/routers/pages.py.tmpl", Dest: "app/routers/pages.py", Root: RootAPI},
		},
		azure: []FileSpec{
			{Template: "cicd/azure/ci-api.yml.tmpl", Dest: ".github/workflows/ci.yml", Root: RootAPI},
		},
		azureFE: []FileSpec{
			{Template: "cicd/azure/ci-frontend.yml.tmpl", Dest: ".github/workflows/ci.yml", Root: RootFrontend},
			{Template: "cicd/azure/deploy-frontend.yml.tmpl", Dest: ".github/workflows/deploy.yml", Root: RootFrontend},
		},
		render: []FileSpec{
			{Template: "cicd/render/render.yaml.tmpl", Dest: "render.yaml", Root: RootWorkspace},
		},
		typeMap: newTypeMap(),
		combos:  newCombinations(),
	}
}

// Resolve returns the ordered file set for one (frontend_type, options)
// combination. The result is a fresh slice; the catalog itself is never
// exposed mutably. Resolution is total: every valid combination maps to
// a non-empty list.
func (c *Catalog) Resolve(frontend config.FrontendType, opts ResolveOptions) []FileSpec {
	out := make([]FileSpec, 0,
		len(c.common)+len(c.api)+len(c.auth)+len(c.alembic)+len(c.sse)+len(c.react)+len(c.htmx))

	out = append(out, c.common...)

	// .gitignore placement differs per layout: multi-repo puts one in
	// each repo root, single-repo puts one at the workspace root (which
	// is also the API root, so the API list already covers it).
	out = append(out, c.api...)

	if opts.IncludeAlembic {
		out = append(out, c.alembic...)
	}
	if opts.IncludeSSE {
		out = append(out, c.sse...)
	}
	if opts.IncludeAuth {
		out = append(out, c.auth...)
	}

	if frontend == config.FrontendReact {
		out = append(out, c.react...)
	} else {
		out = append(out, c.htmx...)
	}

	return out
}

// DeploymentFiles returns the CI/CD file specs. The choice is driven by
// the project type, independent of Resolve; the engine composes both.
func (c *Catalog) DeploymentFiles(projectType config.ProjectType, frontend config.FrontendType) []FileSpec {
	if projectType == config.ProjectTypeWork {
		out := make([]FileSpec, 0, len(c.azure)+len(c.azureFE))
		out = append(out, c.azure...)
		if frontend == config.FrontendReact {
			out = append(out, c.azureFE...)
		}
		return out
	}
	out := make([]FileSpec, 0, len(c.render))
	out = append(out, c.render...)
	return out
}
