package townpress

import (
	"context"
	"time"
)

// Document represents one raw input file from the mirrored site.
// Position is the document's index in discovery order; every downstream fold
// (metadata, aggregation) relies on it.
type Document struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	RawHTML  string `json:"-"`
	Position int    `json:"position"`
}

// PageRecord is the immutable classification result for one document.
// Exactly one PageRecord exists per successfully processed Document.
type PageRecord struct {
	ID          string   `json:"id,omitempty"`
	Type        PageType `json:"type"`
	Title       string   `json:"title"`
	Content     string   `json:"content"` // markdown
	Source      string   `json:"source"`
	ContentHash string   `json:"contentHash,omitempty"`
	Position    int      `json:"position"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PageRecord) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "page record source required")
	}
	if r.Type == "" {
		return Errorf(EINVALID, "page record type required")
	}
	return nil
}

// Run represents one archived conversion of a source directory.
type Run struct {
	ID        string       `json:"id"`
	SourceDir string       `json:"sourceDir"`
	SiteName  string       `json:"siteName"`
	CreatedAt time.Time    `json:"createdAt"`
	Metadata  SiteMetadata `json:"metadata"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.SourceDir == "" {
		return Errorf(EINVALID, "run source directory required")
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID        *string `json:"id"`
	SourceDir *string `json:"sourceDir"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SiteArchive persists conversion runs and their page records.
type SiteArchive interface {
	// CreateRun stores a run together with all of its page records.
	CreateRun(ctx context.Context, run *Run, records []*PageRecord) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindRecordsByRun retrieves a run's page records in discovery order.
	FindRecordsByRun(ctx context.Context, runID string) ([]*PageRecord, error)

	// DeleteRun removes a run and its records.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
