package component

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stackgen-cli/stackgen/internal/catalog"
	"github.com/stackgen-cli/stackgen/internal/config"
	"github.com/stackgen-cli/stackgen/internal/defs"
	"github.com/stackgen-cli/stackgen/internal/metadata"
)

// scaffoldedDir lays down a minimal project: just the metadata file, as
// written by the generation engine.
func scaffoldedDir(t *testing.T, ft config.FrontendType) string {
	t.Helper()
	cfg := config.NewProjectConfig()
	cfg.Name = "demo"
	cfg.ProjectType = config.ProjectTypePersonal
	cfg.FrontendType = ft
	cfg.ApplyDefaults()

	data, err := metadata.Render(cfg, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defs.ScaffoldMetadata), data, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func readGenerated(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestAdd_DBModel(t *testing.T) {
	dir := scaffoldedDir(t, config.FrontendHTMX)
	cc := config.ComponentConfig{
		Type:         config.ComponentDBModel,
		ResourceName: "category",
		Fields: []config.Field{
			{Name: "title", Type: "str"},
			{Name: "position", Type: "int"},
			{Name: "published_at", Type: "datetime"},
		},
	}

	metaBefore := readGenerated(t, dir, defs.ScaffoldMetadata)

	created, err := Add(dir, cc, catalog.New())
	if err != nil {
		t.Fatal(err)
	}
	if readGenerated(t, dir, defs.ScaffoldMetadata) != metaBefore {
		t.Error("adding a component must not modify the metadata file")
	}
	want := []string{"app/models/category.py", "app/schemas/category.py"}
	if len(created) != len(want) {
		t.Fatalf("created = %v, want %v", created, want)
	}
	for i, rel := range want {
		if created[i] != rel {
			t.Errorf("created[%d] = %q, want %q", i, created[i], rel)
		}
	}

	model := readGenerated(t, dir, "app/models/category.py")
	for _, snippet := range []string{
		"class Category(TimestampMixin, Base):",
		`__tablename__ = "categories"`,
		"id: Mapped[int] = mapped_column(primary_key=True)",
		"title: Mapped[str] = mapped_column(String(255))",
		"position: Mapped[int] = mapped_column(Integer)",
		"published_at: Mapped[datetime] = mapped_column(DateTime)",
		"from sqlalchemy import DateTime, Integer, String",
	} {
		if !strings.Contains(model, snippet) {
			t.Errorf("model missing %q\n%s", snippet, model)
		}
	}

	schema := readGenerated(t, dir, "app/schemas/category.py")
	for _, snippet := range []string{
		"class CategoryBase(BaseModel):",
		"class CategoryCreate(CategoryBase):",
		"class CategoryUpdate(BaseModel):",
		"class CategoryRead(CategoryBase):",
		"model_config = ConfigDict(from_attributes=True)",
		"published_at: datetime",
		"position: int | None = None",
		"from datetime import datetime",
	} {
		if !strings.Contains(schema, snippet) {
			t.Errorf("schema missing %q\n%s", snippet, schema)
		}
	}
}

func TestAdd_APIRouter(t *testing.T) {
	t.Run("with_fields_generates_model_schema_and_router", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{
			Type:         config.ComponentAPIRouter,
			ResourceName: "order",
			Fields:       []config.Field{{Name: "total", Type: "float"}},
		}

		created, err := Add(dir, cc, catalog.New())
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 3 {
			t.Fatalf("created = %v, want 3 files", created)
		}

		router := readGenerated(t, dir, "app/routers/order.py")
		for _, snippet := range []string{
			`router = APIRouter(prefix="/orders", tags=["orders"])`,
			"from app.models.order import Order",
			"async def list_orders(db: AsyncSession = Depends(get_db)):",
			"async def create_order(payload: OrderCreate",
			"status_code=status.HTTP_204_NO_CONTENT",
		} {
			if !strings.Contains(router, snippet) {
				t.Errorf("router missing %q\n%s", snippet, router)
			}
		}
	})

	t.Run("without_fields_generates_skeleton_router_only", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{
			Type:         config.ComponentAPIRouter,
			ResourceName: "report",
		}

		created, err := Add(dir, cc, catalog.New())
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 1 || created[0] != "app/routers/report.py" {
			t.Fatalf("created = %v", created)
		}
		router := readGenerated(t, dir, "app/routers/report.py")
		if strings.Contains(router, "AsyncSession") {
			t.Error("skeleton router should not reference the database")
		}
	})
}

func TestAdd_MultiRepoLayout(t *testing.T) {
	dir := scaffoldedDir(t, config.FrontendReact)
	cc := config.ComponentConfig{
		Type:         config.ComponentDBModel,
		ResourceName: "invoice",
		Fields:       []config.Field{{Name: "number", Type: "str"}},
	}

	created, err := Add(dir, cc, catalog.New())
	if err != nil {
		t.Fatal(err)
	}
	for _, rel := range created {
		if !strings.HasPrefix(rel, "demo-api/") {
			t.Errorf("multi-repo artifact %q should live under demo-api/", rel)
		}
	}
}

func TestAdd_Failures(t *testing.T) {
	t.Run("not_a_scaffolded_project", func(t *testing.T) {
		cc := config.ComponentConfig{Type: config.ComponentDBModel, ResourceName: "x"}
		_, err := Add(t.TempDir(), cc, catalog.New())
		if !errors.Is(err, metadata.ErrNotAScaffoldedProject) {
			t.Fatalf("expected ErrNotAScaffoldedProject, got %v", err)
		}
	})

	t.Run("unsupported_component_type_named_in_error", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{Type: config.ComponentGitHubAction, ResourceName: "deploy"}
		_, err := Add(dir, cc, catalog.New())
		if !errors.Is(err, ErrUnsupportedComponent) {
			t.Fatalf("expected ErrUnsupportedComponent, got %v", err)
		}
		if !strings.Contains(err.Error(), "github_action") {
			t.Errorf("error should name the kind: %v", err)
		}
	})

	t.Run("unknown_field_type_rejected", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{
			Type:         config.ComponentDBModel,
			ResourceName: "order",
			Fields:       []config.Field{{Name: "total", Type: "decimal"}},
		}
		_, err := Add(dir, cc, catalog.New())
		if !errors.Is(err, catalog.ErrUnknownFieldType) {
			t.Fatalf("expected ErrUnknownFieldType, got %v", err)
		}
	})

	t.Run("collision_writes_nothing", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		// Pre-existing schema file: the second artifact of the batch.
		schemaPath := filepath.Join(dir, "app", "schemas", "category.py")
		if err := os.MkdirAll(filepath.Dir(schemaPath), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(schemaPath, []byte("# existing"), 0o644); err != nil {
			t.Fatal(err)
		}

		cc := config.ComponentConfig{
			Type:         config.ComponentDBModel,
			ResourceName: "category",
			Fields:       []config.Field{{Name: "title", Type: "str"}},
		}
		_, err := Add(dir, cc, catalog.New())
		if !errors.Is(err, ErrNameCollision) {
			t.Fatalf("expected ErrNameCollision, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(dir, "app", "models", "category.py")); !os.IsNotExist(statErr) {
			t.Error("collision must leave no partial artifacts")
		}
		if got := readGenerated(t, dir, "app/schemas/category.py"); got != "# existing" {
			t.Error("existing file must not be overwritten")
		}
	})

	t.Run("second_add_of_same_resource_collides", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{
			Type:         config.ComponentDBModel,
			ResourceName: "tag",
			Fields:       []config.Field{{Name: "label", Type: "str"}},
		}
		if _, err := Add(dir, cc, catalog.New()); err != nil {
			t.Fatal(err)
		}
		first := readGenerated(t, dir, "app/models/tag.py")

		_, err := Add(dir, cc, catalog.New())
		if !errors.Is(err, ErrNameCollision) {
			t.Fatalf("expected ErrNameCollision, got %v", err)
		}
		if readGenerated(t, dir, "app/models/tag.py") != first {
			t.Error("first add's artifacts must stay intact")
		}
	})

	t.Run("write_failure_rolls_back_files_and_created_dirs", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{
			Type:         config.ComponentDBModel,
			ResourceName: "category",
			Fields:       []config.Field{{Name: "title", Type: "str"}},
		}

		var writes int
		_, err := add(dir, cc, catalog.New(), func(name string, data []byte, perm os.FileMode) error {
			writes++
			if writes > 1 {
				return errors.New("disk full")
			}
			return os.WriteFile(name, data, perm)
		})
		if !errors.Is(err, ErrWriteFailure) {
			t.Fatalf("expected ErrWriteFailure, got %v", err)
		}

		if _, statErr := os.Stat(filepath.Join(dir, "app", "models", "category.py")); !os.IsNotExist(statErr) {
			t.Error("written artifact should be removed")
		}
		// The batch created app/, app/models/ and app/schemas/; all must
		// be gone again.
		for _, sub := range []string{"app/models", "app/schemas", "app"} {
			if _, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(sub))); !os.IsNotExist(statErr) {
				t.Errorf("directory %s created by the failed batch should be pruned", sub)
			}
		}
	})

	t.Run("rollback_keeps_preexisting_dirs", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		modelsDir := filepath.Join(dir, "app", "models")
		if err := os.MkdirAll(modelsDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(modelsDir, "base.py"), []byte("# base"), 0o644); err != nil {
			t.Fatal(err)
		}

		cc := config.ComponentConfig{
			Type:         config.ComponentDBModel,
			ResourceName: "category",
			Fields:       []config.Field{{Name: "title", Type: "str"}},
		}
		var writes int
		_, err := add(dir, cc, catalog.New(), func(name string, data []byte, perm os.FileMode) error {
			writes++
			if writes > 1 {
				return errors.New("disk full")
			}
			return os.WriteFile(name, data, perm)
		})
		if !errors.Is(err, ErrWriteFailure) {
			t.Fatalf("expected ErrWriteFailure, got %v", err)
		}
		if _, statErr := os.Stat(filepath.Join(modelsDir, "base.py")); statErr != nil {
			t.Error("pre-existing files must survive rollback")
		}
		if _, statErr := os.Stat(modelsDir); statErr != nil {
			t.Error("non-empty directories must not be pruned")
		}
	})

	t.Run("invalid_resource_name_rejected", func(t *testing.T) {
		dir := scaffoldedDir(t, config.FrontendHTMX)
		cc := config.ComponentConfig{Type: config.ComponentDBModel, ResourceName: "Bad-Name"}
		_, err := Add(dir, cc, catalog.New())
		if !errors.Is(err, config.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
