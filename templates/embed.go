// Package templates holds the embedded template tree used by the
// generation engine. Files ending in .tmpl are rendered with the
// project RenderContext; all other files are copied verbatim.
package templates

import "embed"

//go:embed all:common all:claude all:docker all:api all:alembic all:frontend all:cicd
var FS embed.FS
