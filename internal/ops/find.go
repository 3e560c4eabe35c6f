package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/toolshed/internal/db"
	"github.com/hpungsan/toolshed/internal/record"
)

// FindInput contains the optional filter predicates for Find. All are
// AND-combined; an empty input matches everything.
type FindInput struct {
	Query    string
	Tag      string
	Platform string
	Language string
	Version  string
}

// FindOutput contains the result of the Find operation.
type FindOutput struct {
	Items []record.ToolRecord `json:"items"`
}

// Find retrieves records matching the filters, ordered by name ascending.
// An empty result is not an error.
func Find(database *sql.DB, input FindInput) (*FindOutput, error) {
	items, err := db.Find(database, db.FindFilters{
		Query:    strings.TrimSpace(input.Query),
		Tag:      strings.TrimSpace(input.Tag),
		Platform: strings.TrimSpace(input.Platform),
		Language: strings.TrimSpace(input.Language),
		Version:  strings.TrimSpace(input.Version),
	})
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []record.ToolRecord{}
	}

	return &FindOutput{Items: items}, nil
}
