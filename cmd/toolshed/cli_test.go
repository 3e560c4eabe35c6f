package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/toolshed/internal/config"
	"github.com/hpungsan/toolshed/internal/db"
)

// setupApp creates a CLI app over a temporary database and captures its
// output.
func setupApp(t *testing.T) (*cli.App, *bytes.Buffer, string) {
	t.Helper()

	baseDir := t.TempDir()
	database, err := db.Init(baseDir)
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := &config.Config{ProjectRoot: t.TempDir(), DisplayTimezone: "UTC"}

	app := newCLIApp(database, cfg, baseDir)
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out

	return app, out, baseDir
}

func TestAddAndList(t *testing.T) {
	app, out, _ := setupApp(t)

	err := app.Run([]string{"toolshed", "add",
		"--name", "My Tool",
		"--language", "py",
		"--tags", "ETL, data,etl",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out.String(), "Upserted: my_tool") {
		t.Errorf("add output = %q, want upsert confirmation for my_tool", out.String())
	}

	out.Reset()
	if err := app.Run([]string{"toolshed", "list"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	listed := out.String()
	if !strings.Contains(listed, "my_tool") || !strings.Contains(listed, "Python") {
		t.Errorf("list output = %q, want normalized record", listed)
	}
	if !strings.Contains(listed, "data,etl") {
		t.Errorf("list output = %q, want canonical tags", listed)
	}
}

func TestListEmptyCatalog(t *testing.T) {
	app, out, _ := setupApp(t)

	if err := app.Run([]string{"toolshed", "list"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "(empty)") {
		t.Errorf("list output = %q, want (empty)", out.String())
	}
}

func TestFindNoResults(t *testing.T) {
	app, out, _ := setupApp(t)

	if err := app.Run([]string{"toolshed", "find", "--q", "nothing"}); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.Contains(out.String(), "(no results)") {
		t.Errorf("find output = %q, want (no results)", out.String())
	}
}

func TestFindByTagScenario(t *testing.T) {
	app, out, _ := setupApp(t)

	for _, args := range [][]string{
		{"toolshed", "add", "--name", "pandas", "--tags", "data,etl"},
		{"toolshed", "add", "--name", "sqlite", "--tags", "database,etl"},
	} {
		if err := app.Run(args); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	out.Reset()
	if err := app.Run([]string{"toolshed", "find", "--tag", "data"}); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	found := out.String()
	if !strings.Contains(found, "pandas") {
		t.Errorf("find output = %q, want pandas", found)
	}
	if strings.Contains(found, "sqlite") {
		t.Errorf("find output = %q, tag data must not match database", found)
	}
}

func TestAddRequiresName(t *testing.T) {
	app, _, _ := setupApp(t)

	if err := app.Run([]string{"toolshed", "add", "--language", "py"}); err == nil {
		t.Fatal("add without --name should fail")
	}
}

func TestExportImportCommands(t *testing.T) {
	app, out, _ := setupApp(t)

	if err := app.Run([]string{"toolshed", "add", "--name", "jq", "--tags", "cli,json"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	csvPath := filepath.Join(t.TempDir(), "catalog.csv")
	out.Reset()
	if err := app.Run([]string{"toolshed", "export-csv", csvPath}); err != nil {
		t.Fatalf("export-csv failed: %v", err)
	}
	if !strings.Contains(out.String(), "Exported 1 records") {
		t.Errorf("export output = %q", out.String())
	}

	out.Reset()
	if err := app.Run([]string{"toolshed", "import-csv", csvPath}); err != nil {
		t.Fatalf("import-csv failed: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 1 rows (skipped 0)") {
		t.Errorf("import output = %q", out.String())
	}
}

func TestMakeCSVTemplateCommand(t *testing.T) {
	app, out, _ := setupApp(t)

	path := filepath.Join(t.TempDir(), "template.csv")
	if err := app.Run([]string{"toolshed", "make-csv-template", "--path", path, "--with-example"}); err != nil {
		t.Fatalf("make-csv-template failed: %v", err)
	}
	if !strings.Contains(out.String(), "CSV template written to:") {
		t.Errorf("template output = %q", out.String())
	}
}

func TestInitCommand(t *testing.T) {
	app, out, baseDir := setupApp(t)

	if err := app.Run([]string{"toolshed", "init"}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out.String(), db.Path(baseDir)) {
		t.Errorf("init output = %q, want database path", out.String())
	}
}
