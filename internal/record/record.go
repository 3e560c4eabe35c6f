package record

// FieldNames is the canonical field order, shared by the tools table and
// the CSV interchange header.
var FieldNames = []string{
	"name", "language", "version", "platform", "purpose", "link",
	"tags", "snippet_path", "notes", "created_at", "updated_at",
}

// ToolRecord is a single catalog entry, keyed by Name.
type ToolRecord struct {
	// Name is the slugged primary identifier (lowercase, [a-z0-9_-]).
	Name string

	// Language is the canonical language label, e.g. "Python".
	Language string

	// Version has the leading v/V stripped, e.g. "3.11".
	Version string

	// Platform is the canonical platform label, e.g. "Colab".
	Platform string

	// Purpose is a one-line description.
	Purpose string

	// Link points at docs, notes, or a repository.
	Link string

	// Tags is the deduplicated, sorted tag set. It serializes to the
	// comma-joined canonical string at the storage and CSV boundaries.
	Tags TagSet

	// SnippetPath references a snippet file, forward slashes, relative to
	// the project root when it resolves inside it.
	SnippetPath string

	// Notes is free text.
	Notes string

	// CreatedAt and UpdatedAt are canonical UTC timestamps with second
	// precision and a literal Z suffix, e.g. 2025-09-25T09:12:00Z.
	CreatedAt string
	UpdatedAt string
}

// FromFields builds a ToolRecord from canonical field values keyed by the
// names in FieldNames. Missing keys default to empty.
func FromFields(fields map[string]string) *ToolRecord {
	return &ToolRecord{
		Name:        fields["name"],
		Language:    fields["language"],
		Version:     fields["version"],
		Platform:    fields["platform"],
		Purpose:     fields["purpose"],
		Link:        fields["link"],
		Tags:        ParseTags(fields["tags"]),
		SnippetPath: fields["snippet_path"],
		Notes:       fields["notes"],
		CreatedAt:   fields["created_at"],
		UpdatedAt:   fields["updated_at"],
	}
}

// ToFields converts the record back to a field map keyed by FieldNames.
func (r *ToolRecord) ToFields() map[string]string {
	return map[string]string{
		"name":         r.Name,
		"language":     r.Language,
		"version":      r.Version,
		"platform":     r.Platform,
		"purpose":      r.Purpose,
		"link":         r.Link,
		"tags":         r.Tags.String(),
		"snippet_path": r.SnippetPath,
		"notes":        r.Notes,
		"created_at":   r.CreatedAt,
		"updated_at":   r.UpdatedAt,
	}
}

// Values returns the field values in FieldNames order, the shape of one
// CSV data row.
func (r *ToolRecord) Values() []string {
	return []string{
		r.Name, r.Language, r.Version, r.Platform, r.Purpose, r.Link,
		r.Tags.String(), r.SnippetPath, r.Notes, r.CreatedAt, r.UpdatedAt,
	}
}
