package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/ui"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List supported project templates and options",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	md := templatesMarkdown(cat)
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(theme, headless, md))
	return nil
}

// templatesMarkdown builds the markdown listing of every supported
// (project_type, frontend_type) combination, option defaults and field
// types.
func templatesMarkdown(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("# Available templates\n\n")
	b.WriteString("| Project type | Frontend | Deploy target | Structure |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, combo := range cat.Combinations() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			combo.ProjectType, combo.FrontendType, combo.DeployTarget, combo.Structure)
	}
	b.WriteString("\n")
	for _, combo := range cat.Combinations() {
		fmt.Fprintf(&b, "- **%s + %s**: %s\n",
			combo.ProjectType, combo.FrontendType, combo.Description)
	}

	d := cat.Defaults()
	b.WriteString("\n## Option defaults\n\n")
	fmt.Fprintf(&b, "- auth: %t, alembic: %t, sse: %t, redis: %t\n",
		d.IncludeAuth, d.IncludeAlembic, d.IncludeSSE, d.IncludeRedis)
	fmt.Fprintf(&b, "- api port: %d, frontend port: %d\n", d.APIPort, d.FrontendPort)

	b.WriteString("\n## Field types\n\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(cat.FieldTypes(), ", "))
	return b.String()
}
