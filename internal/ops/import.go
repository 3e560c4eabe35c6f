package ops

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hpungsan/toolshed/internal/config"
	"github.com/hpungsan/toolshed/internal/errors"
)

// ImportInput contains parameters for the ImportCSV operation.
type ImportInput struct {
	Path string // required
}

// RowWarning describes a skipped row.
type RowWarning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportOutput contains the result of the ImportCSV operation.
type ImportOutput struct {
	Imported int          `json:"imported"`
	Skipped  int          `json:"skipped"`
	Warnings []RowWarning `json:"warnings,omitempty"`
}

// ImportCSV reads header-keyed rows and upserts each one independently.
// Rows without a non-empty name are skipped with a warning. A leading BOM
// on the header and incidental whitespace in keys and values are
// tolerated. There is no transaction spanning the file: a failure partway
// through leaves earlier rows committed.
//
// File-supplied updated_at values are not preserved; the merge policy
// stamps every row with the import time. Only a parseable created_at
// survives from the input.
func ImportCSV(database *sql.DB, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	file, err := os.Open(input.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(input.Path)
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to open import file: %w", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err == io.EOF {
		return &ImportOutput{}, nil
	}
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to read header: %w", err))
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	out := &ImportOutput{}
	line := 1 // header was line 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to read row: %w", err))
		}
		line++

		fields := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			fields[key] = strings.TrimSpace(row[i])
		}

		if fields["name"] == "" {
			out.Skipped++
			out.Warnings = append(out.Warnings, RowWarning{
				Line:    line,
				Message: "row without 'name' skipped",
			})
			continue
		}

		// One independent upsert per row; the merge policy backfills an
		// empty created_at and stamps updated_at with now.
		if _, err := Upsert(database, cfg, UpsertInput{Fields: fields}); err != nil {
			return nil, err
		}
		out.Imported++
	}

	return out, nil
}
