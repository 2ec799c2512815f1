package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwielgus/townpress"
)

// Compile-time interface verification.
var _ townpress.SiteArchive = (*ArchiveService)(nil)

// ArchiveService implements townpress.SiteArchive using SQLite.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// CreateRun stores a run together with all of its page records in one
// transaction.
func (s *ArchiveService) CreateRun(ctx context.Context, run *townpress.Run, records []*townpress.PageRecord) error {
	if err := run.Validate(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	metadata, err := json.Marshal(run.Metadata)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source_dir, site_name, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.SourceDir, run.SiteName, string(metadata), run.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, rec := range records {
		rec.ID = uuid.New().String()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO page_records (id, run_id, page_type, title, content, source, content_hash, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, run.ID, string(rec.Type), rec.Title, rec.Content, rec.Source, rec.ContentHash, rec.Position)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *ArchiveService) FindRunByID(ctx context.Context, id string) (*townpress.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_dir, site_name, metadata, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, townpress.Errorf(townpress.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *ArchiveService) FindRuns(ctx context.Context, filter townpress.RunFilter) ([]*townpress.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_dir, site_name, metadata, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceDir != nil {
		query.WriteString(" AND source_dir = ?")
		args = append(args, *filter.SourceDir)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*townpress.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// FindRecordsByRun retrieves a run's page records in discovery order.
func (s *ArchiveService) FindRecordsByRun(ctx context.Context, runID string) ([]*townpress.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, page_type, title, content, source, content_hash, position
		FROM page_records
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*townpress.PageRecord
	for rows.Next() {
		var rec townpress.PageRecord
		var pageType string
		if err := rows.Scan(&rec.ID, &pageType, &rec.Title, &rec.Content, &rec.Source, &rec.ContentHash, &rec.Position); err != nil {
			return nil, err
		}
		rec.Type = townpress.PageType(pageType)
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteRun removes a run; its records cascade.
func (s *ArchiveService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return townpress.Errorf(townpress.ENOTFOUND, "run not found")
	}

	return nil
}

// scanRun scans one runs row shared between the single-row and multi-row
// query paths.
func scanRun(scan func(dest ...any) error) (*townpress.Run, error) {
	var run townpress.Run
	var metadata, createdAt string

	if err := scan(&run.ID, &run.SourceDir, &run.SiteName, &metadata, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(metadata), &run.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse run metadata: %w", err)
	}

	var err error
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}
