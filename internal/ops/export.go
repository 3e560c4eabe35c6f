package ops

import (
	"crypto/rand"
	"database/sql"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/toolshed/internal/db"
	"github.com/hpungsan/toolshed/internal/errors"
	"github.com/hpungsan/toolshed/internal/record"
)

// ExportInput contains parameters for the ExportCSV operation.
type ExportInput struct {
	Path string // required
}

// ExportOutput contains the result of the ExportCSV operation.
type ExportOutput struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// ExportCSV writes the full catalog, ordered by name, to a CSV file with
// the canonical header row. Values are the stored canonical strings.
// The file is written to a temp path and renamed into place so a failure
// partway through preserves any existing file.
func ExportCSV(database *sql.DB, input ExportInput) (*ExportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}

	records, err := db.ListAll(database)
	if err != nil {
		return nil, err
	}

	// Ensure parent directory exists
	dir := filepath.Dir(input.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := input.Path + "." + hex.EncodeToString(randBytes) + ".tmp"

	file, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	// Clean up temp file on failure (original file is preserved)
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(record.FieldNames); err != nil {
		return nil, errors.NewInternal(err)
	}
	for i := range records {
		if err := writer.Write(records[i].Values()); err != nil {
			return nil, errors.NewInternal(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := file.Sync(); err != nil {
		return nil, errors.NewInternal(err)
	}

	// Close before rename (required on Windows; fine elsewhere).
	if err := file.Close(); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	if err := os.Rename(tempPath, input.Path); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	success = true
	return &ExportOutput{
		Path:  input.Path,
		Count: len(records),
	}, nil
}
