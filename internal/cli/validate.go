package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/generator"
	"github.com/stackgen-cli/stackgen/templates"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a scaffolded project for missing files",
	Long: `Reload a project's configuration from its metadata file, re-derive
the expected file list, and report any expected file missing from disk.
Presence only, not content. Exits non-zero when files are missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	gen := generator.New(catalog.New(), templates.FS)
	missing, err := gen.Validate(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(missing) == 0 {
		fmt.Fprintln(out, theme.Success.Render("Project is complete: all expected files present"))
		return nil
	}

	fmt.Fprintln(out, theme.Error.Render(fmt.Sprintf("%d expected file(s) missing:", len(missing))))
	for _, rel := range missing {
		fmt.Fprintf(out, "  %s\n", rel)
	}
	return fmt.Errorf("%d missing file(s)", len(missing))
}
