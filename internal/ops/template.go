package ops

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/toolshed/internal/errors"
	"github.com/hpungsan/toolshed/internal/record"
)

// TemplateInput contains parameters for the MakeTemplate operation.
type TemplateInput struct {
	// Path is the output file. A directory gets tools.csv appended.
	Path string

	// WithExample adds one sample data row after the header.
	WithExample bool
}

// TemplateOutput contains the result of the MakeTemplate operation.
type TemplateOutput struct {
	Path string `json:"path"`
}

// MakeTemplate writes a header-only CSV template (optionally with one
// example row). It never touches the store.
func MakeTemplate(input TemplateInput) (*TemplateOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	outPath := input.Path
	if info, err := os.Stat(outPath); err == nil && info.IsDir() {
		outPath = filepath.Join(outPath, "tools.csv")
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create template directory: %w", err))
	}

	file, err := os.Create(outPath)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create template file: %w", err))
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(record.FieldNames); err != nil {
		return nil, errors.NewInternal(err)
	}

	if input.WithExample {
		now := record.NowUTC()
		example := []string{
			"example-tool", "Python", "3.11", "Linux/Colab",
			"Example row showing the expected column layout",
			"https://example.com", "demo,template",
			"snippets/example_snippet.py",
			"Replace or delete this row before importing",
			now, now,
		}
		if err := writer.Write(example); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &TemplateOutput{Path: outPath}, nil
}
