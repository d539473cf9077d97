package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/component"
	"github.com/stackgen-cli/stackgen/internal/config"
)

var addFlags struct {
	project string
	kind    string
	fields  []string
}

var addCmd = &cobra.Command{
	Use:   "add <resource>",
	Short: "Add a component to an existing project",
	Long: `Add a generated component to a scaffolded project. The resource name
is a singular snake_case noun; routes, class names and the table name
are derived from it.

Fields are given as name:type pairs, for example:

  stackgen add order --type db_model --field customer_id:int --field total:float

Run 'stackgen templates' for the supported field types.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&addFlags.project, "project", "p", ".", "scaffolded project directory")
	f.StringVarP(&addFlags.kind, "type", "t", string(config.ComponentAPIRouter),
		"component type: api_router or db_model")
	f.StringArrayVarP(&addFlags.fields, "field", "F", nil, "field as name:type (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(addFlags.fields)
	if err != nil {
		return err
	}

	cc := config.ComponentConfig{
		Type:         config.ComponentType(addFlags.kind),
		ResourceName: args[0],
		Fields:       fields,
	}

	created, err := component.Add(addFlags.project, cc, catalog.New())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Success.Render(fmt.Sprintf(
		"Added %s %q (%d files)", cc.Type, cc.ResourceName, len(created))))
	for _, rel := range created {
		fmt.Fprintf(out, "  %s\n", rel)
	}
	if cc.Type == config.ComponentAPIRouter {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Muted.Render(
			fmt.Sprintf("Register the router in app/main.py: app.include_router(%s.router)", args[0])))
	}
	return nil
}

// parseFields turns repeated name:type flags into Field values.
func parseFields(raw []string) ([]config.Field, error) {
	fields := make([]config.Field, 0, len(raw))
	for _, r := range raw {
		name, typ, ok := strings.Cut(r, ":")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("invalid field %q: expected name:type", r)
		}
		fields = append(fields, config.Field{Name: name, Type: typ})
	}
	return fields, nil
}
