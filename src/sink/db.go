package sink

import (
	"context"
	"fmt"

	"webscaffold/src/model"
)

type failureCreator interface {
	Create(ctx context.Context, rec *model.FailureRecord) error
}

// DBSink persists records through the failure repository.
type DBSink struct {
	repo failureCreator
}

func NewDBSink(repo failureCreator) *DBSink {
	return &DBSink{repo: repo}
}

func (d *DBSink) Record(ctx context.Context, rec *model.FailureRecord) error {
	if err := d.repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("persist failure record: %w", err)
	}
	return nil
}

func (d *DBSink) Name() string { return "database" }
