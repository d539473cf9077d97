package defs

// Common file names used across the project.
const (
	// ScaffoldMetadata is the metadata file written at the root of every
	// generated project. It is the source of truth for all later
	// operations against that project.
	ScaffoldMetadata = ".scaffold.json"

	// TemplateSuffix marks embedded files that are rendered with the
	// project RenderContext before being written.
	TemplateSuffix = ".tmpl"
)

// Directory-name suffixes for the multi-repo (react) layout.
const (
	APIDirSuffix      = "-api"
	FrontendDirSuffix = "-frontend"
)
