// Package ui renders catalog records for the terminal.
// Uses fatih/color for styling; timestamps display in the configured
// local zone with the stored UTC form alongside.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hpungsan/toolshed/internal/record"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatRecord renders one catalog entry as a multi-line block.
func FormatRecord(r *record.ToolRecord, loc *time.Location) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("- %s | lang=%s %s | plat=%s | tags=%s\n",
		bold(r.Name), r.Language, r.Version, r.Platform, cyan(r.Tags.String())))

	if r.Purpose != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("purpose:"), r.Purpose))
	}
	if r.Link != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("link:   "), r.Link))
	}
	if r.SnippetPath != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("snippet:"), r.SnippetPath))
	}
	if r.Notes != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("notes:  "), r.Notes))
	}

	sb.WriteString(fmt.Sprintf("  %s %s (%s) | %s %s (%s)\n",
		faint("created:"), record.FormatLocal(r.CreatedAt, loc), r.CreatedAt,
		faint("updated:"), record.FormatLocal(r.UpdatedAt, loc), r.UpdatedAt))

	return sb.String()
}

// FormatUpserted renders the confirmation line printed after an upsert.
func FormatUpserted(r *record.ToolRecord, loc *time.Location) string {
	return fmt.Sprintf("Upserted: %s (created_at=%s, updated_at=%s)",
		bold(r.Name),
		record.FormatLocal(r.CreatedAt, loc),
		record.FormatLocal(r.UpdatedAt, loc))
}
