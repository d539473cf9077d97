package component

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
)

// buildModel assembles the SQLAlchemy model source for a resource.
// Generated component code is built programmatically rather than from
// templates: the shape depends on the field list, not on a fixed form.
func buildModel(cat *catalog.Catalog, resource string, fields []config.Field) (string, error) {
	className := ClassName(resource)
	table := Plural(resource)

	columnImports := map[string]bool{}
	var columns []string
	for _, f := range fields {
		pair, err := cat.FieldType(f.Type)
		if err != nil {
			return "", err
		}
		if pair.Column == "String" {
			columnImports["String"] = true
			columns = append(columns,
				fmt.Sprintf("    %s: Mapped[str] = mapped_column(String(255))", f.Name))
			continue
		}
		columnImports[pair.Column] = true
		columns = append(columns,
			fmt.Sprintf("    %s: Mapped[%s] = mapped_column(%s)",
				f.Name, pythonAnnotation(pair), pair.Column))
	}

	imports := make([]string, 0, len(columnImports))
	for name := range columnImports {
		imports = append(imports, name)
	}
	slices.Sort(imports)

	var b strings.Builder
	if len(imports) > 0 {
		fmt.Fprintf(&b, "from sqlalchemy import %s\n", strings.Join(imports, ", "))
	}
	b.WriteString("from sqlalchemy.orm import Mapped, mapped_column\n")
	b.WriteString("\n")
	b.WriteString("from app.models.base import Base, TimestampMixin\n")
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "class %s(TimestampMixin, Base):\n", className)
	fmt.Fprintf(&b, "    __tablename__ = %q\n", table)
	b.WriteString("\n")
	b.WriteString("    id: Mapped[int] = mapped_column(primary_key=True)\n")
	for _, col := range columns {
		b.WriteString(col + "\n")
	}
	return b.String(), nil
}

// buildSchema assembles the Pydantic schema source for a resource:
// Base, Create, Update and Read classes.
func buildSchema(cat *catalog.Catalog, resource string, fields []config.Field) (string, error) {
	className := ClassName(resource)

	extraImports := map[string]map[string]bool{}
	annotations := make([]string, 0, len(fields))
	for _, f := range fields {
		pair, err := cat.FieldType(f.Type)
		if err != nil {
			return "", err
		}
		if pair.SchemaImport != "" {
			module, name, _ := strings.Cut(pair.SchemaImport, ":")
			if extraImports[module] == nil {
				extraImports[module] = map[string]bool{}
			}
			extraImports[module][name] = true
		}
		annotations = append(annotations, fmt.Sprintf("%s: %s", f.Name, pair.Schema))
	}

	// Read classes always carry timestamps.
	if extraImports["datetime"] == nil {
		extraImports["datetime"] = map[string]bool{}
	}
	extraImports["datetime"]["datetime"] = true

	modules := make([]string, 0, len(extraImports))
	for m := range extraImports {
		modules = append(modules, m)
	}
	slices.Sort(modules)

	var b strings.Builder
	for _, m := range modules {
		names := make([]string, 0, len(extraImports[m]))
		for n := range extraImports[m] {
			names = append(names, n)
		}
		slices.Sort(names)
		fmt.Fprintf(&b, "from %s import %s\n", m, strings.Join(names, ", "))
	}
	b.WriteString("\n")
	b.WriteString("from pydantic import BaseModel, ConfigDict\n")
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "class %sBase(BaseModel):\n", className)
	if len(annotations) == 0 {
		b.WriteString("    pass\n")
	}
	for _, a := range annotations {
		b.WriteString("    " + a + "\n")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "class %sCreate(%sBase):\n    pass\n", className, className)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "class %sUpdate(BaseModel):\n", className)
	if len(annotations) == 0 {
		b.WriteString("    pass\n")
	}
	for _, a := range annotations {
		b.WriteString("    " + a + " | None = None\n")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "class %sRead(%sBase):\n", className, className)
	b.WriteString("    model_config = ConfigDict(from_attributes=True)\n")
	b.WriteString("\n")
	b.WriteString("    id: int\n")
	b.WriteString("    created_at: datetime\n")
	b.WriteString("    updated_at: datetime\n")
	return b.String(), nil
}

// pythonAnnotation maps a type pair to the Mapped[...] annotation used
// in model columns.
func pythonAnnotation(pair catalog.TypePair) string {
	switch pair.Schema {
	case "UUID":
		return "UUID"
	default:
		return pair.Schema
	}
}
