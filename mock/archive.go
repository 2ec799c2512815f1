package mock

import (
	"context"

	"github.com/mwielgus/townpress"
)

var _ townpress.SiteArchive = (*SiteArchive)(nil)

// SiteArchive is a mock implementation of townpress.SiteArchive.
type SiteArchive struct {
	CreateRunFn        func(ctx context.Context, run *townpress.Run, records []*townpress.PageRecord) error
	FindRunByIDFn      func(ctx context.Context, id string) (*townpress.Run, error)
	FindRunsFn         func(ctx context.Context, filter townpress.RunFilter) ([]*townpress.Run, error)
	FindRecordsByRunFn func(ctx context.Context, runID string) ([]*townpress.PageRecord, error)
	DeleteRunFn        func(ctx context.Context, id string) error
}

func (a *SiteArchive) CreateRun(ctx context.Context, run *townpress.Run, records []*townpress.PageRecord) error {
	return a.CreateRunFn(ctx, run, records)
}

func (a *SiteArchive) FindRunByID(ctx context.Context, id string) (*townpress.Run, error) {
	return a.FindRunByIDFn(ctx, id)
}

func (a *SiteArchive) FindRuns(ctx context.Context, filter townpress.RunFilter) ([]*townpress.Run, error) {
	return a.FindRunsFn(ctx, filter)
}

func (a *SiteArchive) FindRecordsByRun(ctx context.Context, runID string) ([]*townpress.PageRecord, error) {
	return a.FindRecordsByRunFn(ctx, runID)
}

func (a *SiteArchive) DeleteRun(ctx context.Context, id string) error {
	return a.DeleteRunFn(ctx, id)
}
