package main

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/toolshed/internal/config"
	"github.com/hpungsan/toolshed/internal/db"
	"github.com/hpungsan/toolshed/internal/ops"
	"github.com/hpungsan/toolshed/internal/ui"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(database *sql.DB, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "toolshed",
		Usage:   "Personal catalog of development tools (SQLite + CSV)",
		Version: Version,
		Commands: []*cli.Command{
			initCmd(baseDir),
			addCmd(database, cfg),
			listCmd(database, cfg),
			findCmd(database, cfg),
			exportCSVCmd(database),
			importCSVCmd(database, cfg),
			templateCmd(baseDir),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// initCmd creates the init command. The store and schema are ensured by
// main before any storage command runs, so this only confirms the path.
func initCmd(baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize the database and schema",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, "Database initialized at:", db.Path(baseDir))
			return nil
		},
	}
}

// addCmd creates the add command.
func addCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add or update a tool (upsert by name)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Tool name (slugged for storage)"},
			&cli.StringFlag{Name: "language", Usage: "Language, e.g. py, go, js"},
			&cli.StringFlag{Name: "version", Usage: "Version, e.g. 3.11, v1.7.6"},
			&cli.StringFlag{Name: "platform", Usage: "Platform, e.g. linux, colab, docker"},
			&cli.StringFlag{Name: "purpose", Usage: "One-line purpose"},
			&cli.StringFlag{Name: "link", Usage: "Docs/notes/repository link"},
			&cli.StringFlag{Name: "tags", Usage: "Tags split on comma/semicolon/whitespace"},
			&cli.StringFlag{Name: "snippet-path", Usage: "Snippet file in the project"},
			&cli.StringFlag{Name: "notes", Usage: "Free-form notes"},
		},
		Action: func(c *cli.Context) error {
			fields := map[string]string{
				"name":         c.String("name"),
				"language":     c.String("language"),
				"version":      c.String("version"),
				"platform":     c.String("platform"),
				"purpose":      c.String("purpose"),
				"link":         c.String("link"),
				"tags":         c.String("tags"),
				"snippet_path": c.String("snippet-path"),
				"notes":        c.String("notes"),
			}

			output, err := ops.Upsert(database, cfg, ops.UpsertInput{Fields: fields})
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, ui.FormatUpserted(output.Record, cfg.Location()))
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all tools, ordered by name",
		Action: func(c *cli.Context) error {
			output, err := ops.List(database)
			if err != nil {
				return err
			}

			if len(output.Items) == 0 {
				fmt.Fprintln(c.App.Writer, "(empty)")
				return nil
			}

			loc := cfg.Location()
			for i := range output.Items {
				fmt.Fprintln(c.App.Writer, ui.FormatRecord(&output.Items[i], loc))
			}
			return nil
		},
	}
}

// findCmd creates the find command.
func findCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Find tools by keyword and filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "q", Usage: "Substring over name/purpose/link/notes"},
			&cli.StringFlag{Name: "tag", Usage: "Exact tag membership"},
			&cli.StringFlag{Name: "platform", Usage: "Platform substring (case-insensitive)"},
			&cli.StringFlag{Name: "language", Usage: "Language substring (case-insensitive)"},
			&cli.StringFlag{Name: "version", Usage: "Version substring"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Find(database, ops.FindInput{
				Query:    c.String("q"),
				Tag:      c.String("tag"),
				Platform: c.String("platform"),
				Language: c.String("language"),
				Version:  c.String("version"),
			})
			if err != nil {
				return err
			}

			if len(output.Items) == 0 {
				fmt.Fprintln(c.App.Writer, "(no results)")
				return nil
			}

			loc := cfg.Location()
			for i := range output.Items {
				fmt.Fprintln(c.App.Writer, ui.FormatRecord(&output.Items[i], loc))
			}
			return nil
		},
	}
}

// exportCSVCmd creates the export-csv command.
func exportCSVCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "export-csv",
		Usage:     "Export the full catalog to a CSV file",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("export-csv requires an output path", 1)
			}

			output, err := ops.ExportCSV(database, ops.ExportInput{Path: c.Args().First()})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Exported %d records to: %s\n", output.Count, output.Path)
			return nil
		},
	}
}

// importCSVCmd creates the import-csv command.
func importCSVCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "import-csv",
		Usage:     "Import tools from a CSV file (upsert by name)",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("import-csv requires an input path", 1)
			}

			output, err := ops.ImportCSV(database, cfg, ops.ImportInput{Path: c.Args().First()})
			if err != nil {
				return err
			}

			for _, w := range output.Warnings {
				fmt.Fprintf(c.App.ErrWriter, "warning: line %d: %s\n", w.Line, w.Message)
			}
			fmt.Fprintf(c.App.Writer, "Imported %d rows (skipped %d) from: %s\n",
				output.Imported, output.Skipped, c.Args().First())
			return nil
		},
	}
}

// templateCmd creates the make-csv-template command. It never opens the
// store.
func templateCmd(baseDir string) *cli.Command {
	defaultPath := filepath.Join(baseDir, "exports", "tools.csv")
	return &cli.Command{
		Name:  "make-csv-template",
		Usage: "Write a CSV header template (optionally with one example row)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Value: defaultPath, Usage: "Output file or directory"},
			&cli.BoolFlag{Name: "with-example", Usage: "Include one example data row"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.MakeTemplate(ops.TemplateInput{
				Path:        c.String("path"),
				WithExample: c.Bool("with-example"),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, "CSV template written to:", output.Path)
			return nil
		},
	}
}
