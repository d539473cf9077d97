package cli

import (
	"strings"
	"testing"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
)

func TestParseFields(t *testing.T) {
	t.Run("parses_name_type_pairs", func(t *testing.T) {
		fields, err := parseFields([]string{"title:str", "count:int"})
		if err != nil {
			t.Fatal(err)
		}
		want := []config.Field{{Name: "title", Type: "str"}, {Name: "count", Type: "int"}}
		if len(fields) != len(want) {
			t.Fatalf("got %v", fields)
		}
		for i := range want {
			if fields[i] != want[i] {
				t.Errorf("fields[%d] = %v, want %v", i, fields[i], want[i])
			}
		}
	})

	t.Run("rejects_malformed_pairs", func(t *testing.T) {
		for _, raw := range []string{"title", "title:", ":str", ""} {
			if _, err := parseFields([]string{raw}); err == nil {
				t.Errorf("%q should be rejected", raw)
			}
		}
	})

	t.Run("empty_input_gives_empty_slice", func(t *testing.T) {
		fields, err := parseFields(nil)
		if err != nil || len(fields) != 0 {
			t.Fatalf("got %v, %v", fields, err)
		}
	})
}

func TestTemplatesMarkdown(t *testing.T) {
	md := templatesMarkdown(catalog.New())

	for _, want := range []string{
		"# Available templates",
		"| work | react |",
		"| personal | htmx |",
		"## Option defaults",
		"## Field types",
		"datetime",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("listing missing %q", want)
		}
	}
}
