package core

import (
	"context"
	"fmt"
	"time"

	"paybatch/internal/iban"
	"paybatch/internal/registry"
	"paybatch/internal/schedule"
)

// Service ties the bank catalog, the validators and the exporter together.
// It holds no mutable state; the catalog is read-only, so a single Service
// value is safe for concurrent use.
type Service struct {
	registry  *registry.Registry
	exportLog ExportLogRepository
}

// NewService builds the engine around a loaded catalog. exportLog may be nil,
// in which case batch numbers fall back to a timestamp-derived token.
func NewService(reg *registry.Registry, exportLog ExportLogRepository) Service {
	return Service{
		registry:  reg,
		exportLog: exportLog,
	}
}

// Banks returns the catalog in stable order.
func (s Service) Banks() []registry.BankDefinition {
	return s.registry.All()
}

// Bank looks up one bank by code. A miss is not an error.
func (s Service) Bank(code string) (registry.BankDefinition, bool) {
	return s.registry.ByCode(code)
}

// ValidateIdentifier checks a single structured account identifier against
// the MOD-97 checksum and resolves its embedded bank code.
func (s Service) ValidateIdentifier(id string) iban.Result {
	return iban.Validate(id, s.registry)
}

// Schedule assesses the bank's processing window at the given reference time.
func (s Service) Schedule(bankCode string, now time.Time) (schedule.Assessment, error) {
	bank, ok := s.registry.ByCode(bankCode)
	if !ok {
		return schedule.Assessment{}, fmt.Errorf("%w: %s", ErrBankNotFound, bankCode)
	}
	return schedule.Assess(bank, now), nil
}

// ValidateBatch validates every record against the target bank plus the
// batch-level rules. The only error condition is an unknown target bank;
// bad payment data is reported inside the summary, never as a Go error.
func (s Service) ValidateBatch(bankCode string, records []PaymentRecord) (BatchValidationSummary, error) {
	bank, ok := s.registry.ByCode(bankCode)
	if !ok {
		return BatchValidationSummary{}, fmt.Errorf("%w: %s", ErrBankNotFound, bankCode)
	}
	return ValidateBatch(s.registry, bank, records), nil
}

// ExportRequest is one export invocation. Now is injected for determinism;
// BatchNumber is allocated from the export log when left empty.
type ExportRequest struct {
	BankCode    string
	Records     []PaymentRecord
	Comment     string
	BatchNumber string
	Now         time.Time
}

// ExportBatch re-validates the batch as a guard, allocates a batch number if
// none was supplied, renders the export document and records it in the
// export log.
func (s Service) ExportBatch(ctx context.Context, req ExportRequest) (ExportDocument, error) {
	bank, ok := s.registry.ByCode(req.BankCode)
	if !ok {
		return ExportDocument{}, fmt.Errorf("%w: %s", ErrBankNotFound, req.BankCode)
	}

	if len(req.Records) == 0 {
		return ExportDocument{}, ErrEmptyBatch
	}

	summary := ValidateBatch(s.registry, bank, req.Records)
	if !summary.Valid {
		return ExportDocument{}, fmt.Errorf("%w: %d invalid records, %d batch errors",
			ErrBatchInvalid, summary.InvalidCount, len(summary.BatchErrors))
	}

	if req.BatchNumber == "" {
		number, err := s.allocateBatchNumber(ctx, bank.Code, req.Now)
		if err != nil {
			return ExportDocument{}, fmt.Errorf("failed to allocate batch number: %w", err)
		}
		req.BatchNumber = number
	}

	doc := BuildExport(bank, req.Records, ExportOptions{
		Comment:     req.Comment,
		BatchNumber: req.BatchNumber,
		Now:         req.Now,
	})

	if s.exportLog != nil {
		entry := ExportLogEntry{
			FileName:           doc.FileName,
			BankCode:           doc.BankCode,
			BatchNumber:        doc.BatchNumber,
			RecordCount:        doc.RecordCount,
			TotalAmountHalalas: doc.TotalAmountHalalas,
			CreatedAt:          req.Now,
		}
		if err := s.exportLog.RecordExport(ctx, entry); err != nil {
			return ExportDocument{}, fmt.Errorf("failed to record export: %w", err)
		}
	}

	return doc, nil
}

func (s Service) allocateBatchNumber(ctx context.Context, bankCode string, now time.Time) (string, error) {
	if s.exportLog == nil {
		return now.Format("150405"), nil
	}

	var number string
	err := s.exportLog.Atomic(ctx, func(r ExportLogRepository) error {
		var err error
		number, err = r.NextBatchNumber(ctx, bankCode, now)
		return err
	})
	return number, err
}
