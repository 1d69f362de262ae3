package core

import (
	"context"
	"time"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// ExportLogRepository allocates batch numbers and records export metadata.
// Implementations must make NextBatchNumber monotonic per bank and date.
type ExportLogRepository interface {
	NextBatchNumber(ctx context.Context, bankCode string, date time.Time) (string, error)
	RecordExport(ctx context.Context, entry ExportLogEntry) error
	Atomic(ctx context.Context, cb func(r ExportLogRepository) error) error
}
