// Package generator is the generation engine: it resolves the file set
// for a validated configuration from the template catalog, renders every
// file against one shared RenderContext, writes the tree with the
// correct repo layout, and persists the scaffold metadata. Failures are
// strictly all-or-nothing: a partially generated project is never left
// on disk.
package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/defs"
	"github.com/stackgen-cli/stackgen/internal/metadata"
)

// ProgressFunc is called once per written file, for UI reporting.
type ProgressFunc func(relPath string, index, total int)

// Generator renders and writes scaffolded projects.
type Generator struct {
	catalog  *catalog.Catalog
	fsys     fs.FS
	renderer Renderer
	now      func() time.Time
	progress ProgressFunc

	// writeFile is swappable for failure-injection tests.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source used in metadata.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithProgress registers a per-file progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) { g.progress = fn }
}

// WithWriteFile overrides the file writer. Tests use it to inject
// write failures partway through a batch.
func WithWriteFile(fn func(name string, data []byte, perm os.FileMode) error) Option {
	return func(g *Generator) { g.writeFile = fn }
}

// New creates a Generator over the given catalog and template FS.
func New(cat *catalog.Catalog, fsys fs.FS, opts ...Option) *Generator {
	g := &Generator{
		catalog:   cat,
		fsys:      fsys,
		renderer:  NewRenderer(fsys),
		now:       time.Now,
		writeFile: os.WriteFile,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result summarizes a completed generation.
type Result struct {
	// ProjectRoot is the absolute path of the generated project.
	ProjectRoot string
	// Files are the created paths, slash-separated, relative to
	// ProjectRoot, in write order.
	Files []string
	// NextSteps are suggested follow-up commands for the caller.
	NextSteps []string
}

// plannedFile is one fully rendered file awaiting write.
type plannedFile struct {
	rel     string
	content []byte
	perm    os.FileMode
}

// Generate scaffolds a complete project under outputDir. The target
// directory must not already exist (or, in use-current-dir mode, must
// exist and be empty). Every template is rendered before the first
// write, and any failure rolls the filesystem back to its pre-call
// state before the error is returned.
func (g *Generator) Generate(ctx context.Context, cfg *config.ProjectConfig, outputDir string) (*Result, error) {
	resolved := *cfg
	resolved.ApplyDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	projectRoot, createdRoot, err := g.prepareRoot(&resolved, outputDir)
	if err != nil {
		return nil, err
	}

	batch, err := g.planFiles(ctx, &resolved)
	if err != nil {
		if createdRoot {
			_ = os.RemoveAll(projectRoot)
		}
		return nil, err
	}

	files, err := g.writeBatch(ctx, projectRoot, batch)
	if err != nil {
		g.rollback(projectRoot, createdRoot)
		return nil, err
	}

	slog.Debug("project generated",
		"name", resolved.Name, "root", projectRoot, "files", len(files))

	return &Result{
		ProjectRoot: projectRoot,
		Files:       files,
		NextSteps:   nextSteps(&resolved, projectRoot),
	}, nil
}

// prepareRoot checks preconditions and creates the project root when
// the layout calls for a new subdirectory. It reports whether the root
// was created by this call, which decides the rollback strategy.
func (g *Generator) prepareRoot(cfg *config.ProjectConfig, outputDir string) (string, bool, error) {
	if cfg.UseCurrentDir {
		root := filepath.Clean(outputDir)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return "", false, fmt.Errorf("%w: %s", ErrOutputDirMissing, root)
		}
		empty, err := isEmptyDir(root)
		if err != nil {
			return "", false, fmt.Errorf("inspect %s: %w", root, err)
		}
		if !empty {
			return "", false, fmt.Errorf("%w: %s", ErrDirNotEmpty, root)
		}
		return root, false, nil
	}

	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return "", false, fmt.Errorf("%w: %s", ErrOutputDirMissing, outputDir)
	}

	root := filepath.Join(outputDir, cfg.Name)
	if _, err := os.Stat(root); err == nil {
		return "", false, fmt.Errorf("%w: %s", ErrAlreadyExists, root)
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		return "", false, fmt.Errorf("create project root %s: %w", root, err)
	}
	return root, true, nil
}

// planFiles resolves the full file set and renders every template into
// memory. No file is written until the whole batch has rendered.
func (g *Generator) planFiles(ctx context.Context, cfg *config.ProjectConfig) ([]plannedFile, error) {
	rctx := NewRenderContext(cfg)

	specs := g.catalog.Resolve(cfg.FrontendType, catalog.ResolveOptions{
		IncludeAuth:    cfg.IncludeAuth,
		IncludeAlembic: cfg.IncludeAlembic,
		IncludeSSE:     cfg.IncludeSSE,
	})
	specs = append(specs, g.catalog.DeploymentFiles(cfg.ProjectType, cfg.FrontendType)...)

	batch := make([]plannedFile, 0, len(specs)+1)
	for _, spec := range specs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rel := relDest(cfg, spec)
		if err := validateDest(rel); err != nil {
			return nil, err
		}

		content, err := g.fileContent(spec, rctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailure, rel, err)
		}

		batch = append(batch, plannedFile{rel: rel, content: content, perm: permFor(spec.Dest)})
	}

	meta, err := metadata.Render(cfg, g.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailure, defs.ScaffoldMetadata, err)
	}
	batch = append(batch, plannedFile{rel: defs.ScaffoldMetadata, content: meta, perm: 0o644})

	return batch, nil
}

// fileContent produces the output bytes for one catalog entry: rendered
// for .tmpl sources, verbatim for raw sources, empty for marker files.
func (g *Generator) fileContent(spec catalog.FileSpec, rctx *RenderContext) ([]byte, error) {
	if spec.Template == "" {
		return nil, nil
	}
	if strings.HasSuffix(spec.Template, defs.TemplateSuffix) {
		return g.renderer.Render(spec.Template, rctx)
	}
	return fs.ReadFile(g.fsys, spec.Template)
}

// writeBatch writes every planned file under projectRoot, creating
// parent directories as needed.
func (g *Generator) writeBatch(ctx context.Context, projectRoot string, batch []plannedFile) ([]string, error) {
	files := make([]string, 0, len(batch))
	for i, f := range batch {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if g.progress != nil {
			g.progress(f.rel, i+1, len(batch))
		}

		dest := filepath.Join(projectRoot, filepath.FromSlash(f.rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("%w: mkdir for %s: %w", ErrRenderFailure, f.rel, err)
		}
		if err := g.writeFile(dest, f.content, f.perm); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", ErrRenderFailure, f.rel, err)
		}
		files = append(files, f.rel)
	}
	return files, nil
}

// rollback restores the output directory to its pre-call state. A root
// created by this call is removed wholesale; in use-current-dir mode
// the directory was empty at the start, so every entry inside it was
// written by this batch and is removed.
func (g *Generator) rollback(projectRoot string, createdRoot bool) {
	if createdRoot {
		_ = os.RemoveAll(projectRoot)
		return
	}
	entries, err := os.ReadDir(projectRoot)
	if err != nil {
		slog.Warn("rollback: cannot list project root", "path", projectRoot, "error", err)
		return
	}
	for _, entry := range entries {
		_ = os.RemoveAll(filepath.Join(projectRoot, entry.Name()))
	}
}

// permFor returns the file mode for a destination: shell scripts get
// the executable bit.
func permFor(dest string) os.FileMode {
	if strings.HasSuffix(dest, ".sh") {
		return 0o755
	}
	return 0o644
}

// isEmptyDir reports whether a directory has no entries.
func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

// nextSteps builds the follow-up instructions returned with a
// successful generation.
func nextSteps(cfg *config.ProjectConfig, projectRoot string) []string {
	var steps []string
	if cfg.IsMultiRepo() {
		steps = append(steps,
			fmt.Sprintf("cd %s && git init", filepath.Join(projectRoot, cfg.APIDirName())),
			fmt.Sprintf("cd %s && git init", filepath.Join(projectRoot, cfg.FrontendDirName())),
		)
	} else {
		steps = append(steps, fmt.Sprintf("cd %s && git init", projectRoot))
	}
	steps = append(steps,
		"Copy .env.example to .env and fill in values",
		"Run 'make up' to start docker compose",
	)
	if cfg.IncludeAlembic {
		steps = append(steps,
			"Run 'make migration msg=\"initial\"' to create the first migration",
			"Run 'make migrate' to apply migrations",
		)
	}
	if cfg.ProjectType == config.ProjectTypeWork {
		steps = append(steps, "Link the repo(s) to Azure App Service / Static Web Apps")
	} else {
		steps = append(steps, "Connect the repo to Render.com and use the render.yaml blueprint")
	}
	return steps
}
