package generator

import "errors"

// Sentinel errors for generation operations.
var (
	// ErrAlreadyExists indicates the target project directory is
	// already present. Generation never overwrites implicitly.
	ErrAlreadyExists = errors.New("generator: target directory already exists")

	// ErrOutputDirMissing indicates the output directory does not exist.
	ErrOutputDirMissing = errors.New("generator: output directory does not exist")

	// ErrDirNotEmpty indicates a use-current-dir scaffold into a
	// non-empty directory.
	ErrDirNotEmpty = errors.New("generator: directory is not empty")

	// ErrRenderFailure indicates a template render or file write failed.
	// The whole batch is rolled back before this is returned.
	ErrRenderFailure = errors.New("generator: render failure")

	// ErrTemplateNotFound indicates a catalog entry references a
	// template missing from the embedded filesystem.
	ErrTemplateNotFound = errors.New("generator: template not found")

	// ErrMissingTemplateKey indicates a template referenced a context
	// key that does not exist.
	ErrMissingTemplateKey = errors.New("generator: missing template key")

	// ErrUnexpandedToken indicates template markup survived rendering.
	ErrUnexpandedToken = errors.New("generator: unexpanded token in rendered output")

	// ErrPathTraversal indicates a destination path that would escape
	// the project root.
	ErrPathTraversal = errors.New("generator: path escapes project root")
)
