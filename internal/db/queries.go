package db

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/toolshed/internal/errors"
	"github.com/hpungsan/toolshed/internal/record"
)

// columnList is the SELECT/INSERT column list in record.FieldNames order.
var columnList = strings.Join(record.FieldNames, ", ")

// Upsert inserts the record or, when the name already exists, replaces
// every column except created_at. updated_at is always replaced. The
// statement is a single atomic write.
func Upsert(db *sql.DB, r *record.ToolRecord) error {
	query := `
		INSERT INTO tools (
			name, language, version, platform, purpose, link,
			tags, snippet_path, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			language     = excluded.language,
			version      = excluded.version,
			platform     = excluded.platform,
			purpose      = excluded.purpose,
			link         = excluded.link,
			tags         = excluded.tags,
			snippet_path = excluded.snippet_path,
			notes        = excluded.notes,
			updated_at   = excluded.updated_at
	`

	_, err := db.Exec(query,
		r.Name, r.Language, r.Version, r.Platform, r.Purpose, r.Link,
		r.Tags.String(), r.SnippetPath, r.Notes, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetCreatedAt returns the stored created_at for a name, with found=false
// when no record exists.
func GetCreatedAt(db *sql.DB, name string) (createdAt string, found bool, err error) {
	row := db.QueryRow("SELECT created_at FROM tools WHERE name = ?", name)
	if err := row.Scan(&createdAt); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.NewInternal(err)
	}
	return createdAt, true, nil
}

// ListAll returns every record ordered by name ascending.
func ListAll(db *sql.DB) ([]record.ToolRecord, error) {
	rows, err := db.Query("SELECT " + columnList + " FROM tools ORDER BY name")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FindFilters holds the optional predicates for Find. Empty fields are
// skipped; the rest are AND-combined.
type FindFilters struct {
	Query    string // substring over name/purpose/link/notes
	Tag      string // exact membership in the canonical tag set
	Platform string // case-insensitive substring
	Language string // case-insensitive substring
	Version  string // substring
}

// Find returns matching records ordered by name ascending. No matches is
// an empty result, not an error.
func Find(db *sql.DB, f FindFilters) ([]record.ToolRecord, error) {
	query := "SELECT " + columnList + " FROM tools WHERE 1=1"
	var args []any

	if f.Query != "" {
		query += " AND (name LIKE ? OR purpose LIKE ? OR link LIKE ? OR notes LIKE ?)"
		pattern := "%" + f.Query + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if f.Tag != "" {
		// Frame the canonical comma-joined tags with boundary commas so
		// tag "a" cannot match a stored tag "ab".
		query += " AND (','||lower(tags)||',' LIKE ?)"
		args = append(args, "%,"+strings.ToLower(f.Tag)+",%")
	}
	if f.Platform != "" {
		query += " AND lower(platform) LIKE ?"
		args = append(args, "%"+strings.ToLower(f.Platform)+"%")
	}
	if f.Language != "" {
		query += " AND lower(language) LIKE ?"
		args = append(args, "%"+strings.ToLower(f.Language)+"%")
	}
	if f.Version != "" {
		query += " AND version LIKE ?"
		args = append(args, "%"+f.Version+"%")
	}
	query += " ORDER BY name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// scanRecords drains rows selected with columnList into records.
func scanRecords(rows *sql.Rows) ([]record.ToolRecord, error) {
	var records []record.ToolRecord
	for rows.Next() {
		var (
			r    record.ToolRecord
			tags string
		)
		err := rows.Scan(
			&r.Name, &r.Language, &r.Version, &r.Platform, &r.Purpose,
			&r.Link, &tags, &r.SnippetPath, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		r.Tags = record.ParseTags(tags)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return records, nil
}
