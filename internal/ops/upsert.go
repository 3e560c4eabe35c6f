package ops

import (
	"database/sql"

	"github.com/hpungsan/toolshed/internal/config"
	"github.com/hpungsan/toolshed/internal/db"
	"github.com/hpungsan/toolshed/internal/errors"
	"github.com/hpungsan/toolshed/internal/record"
)

// UpsertInput contains parameters for the Upsert operation.
type UpsertInput struct {
	// Fields holds raw field values keyed by the names in
	// record.FieldNames. Absent fields default to empty. The full
	// normalization pipeline runs before anything is written.
	Fields map[string]string
}

// UpsertOutput contains the result of the Upsert operation.
type UpsertOutput struct {
	Record  *record.ToolRecord `json:"record"`
	Created bool               `json:"created"`
}

// Upsert normalizes the raw fields and writes the record, keyed by name.
//
// Timestamp policy:
//   - created_at: the input value if it normalized to something non-empty,
//     else the previously stored value for this name, else now.
//   - updated_at: always now, clamped up to created_at so a future-dated
//     created_at supplied via import cannot leave updated_at behind it.
//
// Repeated calls with identical data are idempotent in every field except
// updated_at, which advances on each call.
func Upsert(database *sql.DB, cfg *config.Config, input UpsertInput) (*UpsertOutput, error) {
	norm := record.NewNormalizer(cfg.ProjectRoot)
	rec := record.FromFields(norm.Fields(input.Fields))

	if rec.Name == "" {
		return nil, errors.NewInvalidRequest("name is required")
	}

	existing, found, err := db.GetCreatedAt(database, rec.Name)
	if err != nil {
		return nil, err
	}

	now := record.NowUTC()

	created := rec.CreatedAt
	if created == "" {
		created = existing
	}
	if created == "" {
		created = now
	}

	// Lexical comparison is valid: both sides are canonical fixed-width
	// ISO-UTC strings.
	updated := now
	if updated < created {
		updated = created
	}

	rec.CreatedAt = created
	rec.UpdatedAt = updated

	if err := db.Upsert(database, rec); err != nil {
		return nil, err
	}

	return &UpsertOutput{
		Record:  rec,
		Created: !found,
	}, nil
}
