package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/cli/wizard"
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/generator"
	"github.com/stackgen-cli/stackgen/internal/ui"
	"github.com/stackgen-cli/stackgen/templates"
)

var newFlags struct {
	output        string
	configFile    string
	projectType   string
	frontend      string
	description   string
	dbName        string
	apiPort       int
	frontendPort  int
	noAuth        bool
	noAlembic     bool
	sse           bool
	redis         bool
	useCurrentDir bool
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new full-stack project. With a project name and the
required flags the command runs non-interactively; without them, and
when connected to a terminal, it starts the setup wizard.

A configuration file given via --config provides the base values;
explicit flags override it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	f := newCmd.Flags()
	f.StringVarP(&newFlags.output, "output", "o", ".", "directory to create the project in")
	f.StringVarP(&newFlags.configFile, "config", "c", "", "YAML file with project configuration")
	f.StringVarP(&newFlags.projectType, "type", "t", "", "project type: work or personal")
	f.StringVarP(&newFlags.frontend, "frontend", "f", "", "frontend stack: react or htmx")
	f.StringVarP(&newFlags.description, "description", "d", "", "short project description")
	f.StringVar(&newFlags.dbName, "db-name", "", "database name (default: project name)")
	f.IntVar(&newFlags.apiPort, "api-port", config.DefaultAPIPort, "local API port")
	f.IntVar(&newFlags.frontendPort, "frontend-port", config.DefaultFrontendPort, "local frontend port")
	f.BoolVar(&newFlags.noAuth, "no-auth", false, "skip JWT authentication scaffolding")
	f.BoolVar(&newFlags.noAlembic, "no-alembic", false, "skip Alembic migration scaffolding")
	f.BoolVar(&newFlags.sse, "sse", false, "include a server-sent events endpoint")
	f.BoolVar(&newFlags.redis, "redis", false, "include a Redis service in docker compose")
	f.BoolVar(&newFlags.useCurrentDir, "use-current-dir", false,
		"scaffold into the output directory itself (must be empty)")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := buildNewConfig(cmd, args)
	if err != nil {
		return err
	}

	cat := catalog.New()
	prog := ui.NewProgress(theme, headless)
	var bar ui.ProgressBar

	gen := generator.New(cat, templates.FS, generator.WithProgress(
		func(relPath string, index, total int) {
			if bar == nil {
				bar = prog.Start("Generating", total)
			}
			bar.Increment(1, relPath)
		},
	))

	result, err := gen.Generate(cmd.Context(), cfg, newFlags.output)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Success.Render(fmt.Sprintf(
		"Project %q created (%d files)", cfg.Name, len(result.Files))))
	fmt.Fprintln(out, theme.Muted.Render(result.ProjectRoot))
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Title.Render("Next steps"))
	for i, step := range result.NextSteps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
	return nil
}

// buildNewConfig assembles the ProjectConfig from, in increasing
// precedence: defaults, the --config file, explicit flags, and finally
// the wizard when required values are still missing on a TTY.
func buildNewConfig(cmd *cobra.Command, args []string) (*config.ProjectConfig, error) {
	cfg := config.NewProjectConfig()
	if newFlags.configFile != "" {
		loaded, err := config.LoadProjectFile(newFlags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Name = args[0]
	}
	applyNewFlags(cmd, cfg)

	if cfg.Name != "" && cfg.ProjectType != "" && cfg.FrontendType != "" {
		return cfg, nil
	}

	if headless.IsHeadless() {
		var missing []string
		if cfg.Name == "" {
			missing = append(missing, "name")
		}
		if cfg.ProjectType == "" {
			missing = append(missing, "--type")
		}
		if cfg.FrontendType == "" {
			missing = append(missing, "--frontend")
		}
		return nil, fmt.Errorf("missing %s and no terminal available for the wizard",
			strings.Join(missing, ", "))
	}

	return wizard.Run(cfg)
}

// applyNewFlags copies explicitly set flags onto the config. Unset flags
// leave file or default values untouched.
func applyNewFlags(cmd *cobra.Command, cfg *config.ProjectConfig) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.ProjectType = config.ProjectType(newFlags.projectType)
	}
	if flags.Changed("frontend") {
		cfg.FrontendType = config.FrontendType(newFlags.frontend)
	}
	if flags.Changed("description") {
		cfg.Description = newFlags.description
	}
	if flags.Changed("db-name") {
		cfg.DBName = newFlags.dbName
	}
	if flags.Changed("api-port") {
		cfg.APIPort = newFlags.apiPort
	}
	if flags.Changed("frontend-port") {
		cfg.FrontendPort = newFlags.frontendPort
	}
	if flags.Changed("no-auth") {
		cfg.IncludeAuth = !newFlags.noAuth
	}
	if flags.Changed("no-alembic") {
		cfg.IncludeAlembic = !newFlags.noAlembic
	}
	if flags.Changed("sse") {
		cfg.IncludeSSE = newFlags.sse
	}
	if flags.Changed("redis") {
		cfg.IncludeRedis = newFlags.redis
	}
	if flags.Changed("use-current-dir") {
		cfg.UseCurrentDir = newFlags.useCurrentDir
	}
}
