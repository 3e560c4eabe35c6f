package ops

import (
	"database/sql"

	"github.com/hpungsan/toolshed/internal/db"
	"github.com/hpungsan/toolshed/internal/record"
)

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []record.ToolRecord `json:"items"`
}

// List retrieves every record, ordered by name ascending.
func List(database *sql.DB) (*ListOutput, error) {
	items, err := db.ListAll(database)
	if err != nil {
		return nil, err
	}

	// Ensure we return an empty slice rather than nil
	if items == nil {
		items = []record.ToolRecord{}
	}

	return &ListOutput{Items: items}, nil
}
