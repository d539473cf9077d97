package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

// unexpandedTokenPattern detects leftover template actions in rendered
// output. Raw (non-.tmpl) files are never scanned, so runtime Jinja
// markup in copied HTML templates is not affected.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// actionsExprPattern matches GitHub Actions expressions like
// "${{ secrets.TOKEN }}". These are resolved by the CI runner, not by
// the generator, and must not be flagged as unexpanded tokens.
var actionsExprPattern = regexp.MustCompile(`\$\{\{[^{}]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and
	// executes it with the given data. Returns ErrMissingTemplateKey
	// if a key is missing and ErrUnexpandedToken if template actions
	// remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; tests use fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()

	// Rendered configuration and build files must never carry template
	// markup into their consuming tools. CI runner expressions are
	// masked before the scan.
	masked := actionsExprPattern.ReplaceAll(result, nil)
	if loc := unexpandedTokenPattern.Find(masked); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return result, nil
}
