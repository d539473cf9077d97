// Package cli wires the cobra command tree for the stackgen binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/ui"
	"github.com/stackgen-cli/stackgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackgen",
	Short: "Scaffold full-stack FastAPI projects",
	Long: `stackgen scaffolds complete full-stack projects: a FastAPI backend
with PostgreSQL, a React SPA or server-rendered HTMX frontend, docker
compose for local development, and CI/CD wiring for Azure or Render.

Generated projects carry a metadata file that later commands use to add
components, validate the file tree, and report project details.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	theme    *ui.Theme
	headless *ui.HeadlessManager

	verbose bool
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackgen %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		theme = ui.DefaultTheme()
		headless = ui.NewHeadlessManager()

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(templatesCmd)
}
