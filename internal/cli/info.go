package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/metadata"
)

var infoCmd = &cobra.Command{
	Use:   "info [dir]",
	Short: "Show details of a scaffolded project",
	Long: `Read the metadata file of a scaffolded project and print the
configuration it was generated with.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	doc, err := metadata.Read(dir)
	if err != nil {
		return err
	}

	layout := "single repo"
	if doc.IsMultiRepo() {
		layout = "multi repo (" + doc.APIDirName() + " + " + doc.FrontendDirName() + ")"
	}

	rows := [][2]string{
		{"Name", doc.Name},
		{"Description", doc.Description},
		{"Project type", string(doc.ProjectType)},
		{"Deploy target", doc.ProjectType.DeployTarget()},
		{"Frontend", string(doc.FrontendType)},
		{"Layout", layout},
		{"Database", doc.DBName},
		{"Auth", strconv.FormatBool(doc.IncludeAuth)},
		{"Alembic", strconv.FormatBool(doc.IncludeAlembic)},
		{"SSE", strconv.FormatBool(doc.IncludeSSE)},
		{"Redis", strconv.FormatBool(doc.IncludeRedis)},
		{"API port", strconv.Itoa(doc.APIPort)},
		{"Frontend port", strconv.Itoa(doc.FrontendPort)},
		{"Created", doc.CreatedAt},
		{"Generator", doc.GeneratorVersion},
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Title.Render(doc.Name))
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", theme.Key.Render(fmt.Sprintf("%-14s", row[0])), row[1])
	}
	return nil
}
