package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"paybatch/internal/core"
)

// ExportLogStore persists export metadata and per-bank batch number
// sequences. Payment records themselves are never written.
type ExportLogStore struct {
	db *sql.DB
	tx *sql.Tx
}

func NewExportLogStore(db *sql.DB) ExportLogStore {
	return ExportLogStore{
		db: db,
	}
}

// NextBatchNumber allocates the next sequence number for a bank on a given
// calendar day and formats it as a zero-padded token.
func (s ExportLogStore) NextBatchNumber(ctx context.Context, bankCode string, date time.Time) (string, error) {
	if s.tx == nil {
		return "", errors.New("NextBatchNumber must be called within Atomic transaction")
	}

	day := date.Format("2006-01-02")

	var current int
	err := s.tx.QueryRowContext(ctx, `
			SELECT next_number
			FROM batch_sequences
			WHERE bank_code = ? AND batch_date = ?
		`, bankCode, day).Scan(&current)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		current = 1
		_, err = s.tx.ExecContext(ctx, `
				INSERT INTO batch_sequences (bank_code, batch_date, next_number)
				VALUES (?, ?, 2)
			`, bankCode, day)
		if err != nil {
			return "", fmt.Errorf("failed to insert batch sequence: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("failed to read batch sequence: %w", err)
	default:
		_, err = s.tx.ExecContext(ctx, `
				UPDATE batch_sequences
				SET next_number = next_number + 1
				WHERE bank_code = ? AND batch_date = ?
			`, bankCode, day)
		if err != nil {
			return "", fmt.Errorf("failed to advance batch sequence: %w", err)
		}
	}

	return fmt.Sprintf("%03d", current), nil
}

// RecordExport appends one export log entry. It works both inside and
// outside an Atomic transaction.
func (s ExportLogStore) RecordExport(ctx context.Context, entry core.ExportLogEntry) error {
	_, err := s.querier().ExecContext(ctx, `
			INSERT INTO export_log (
				file_name,
				bank_code,
				batch_number,
				record_count,
				total_amount_halalas,
				created_at
			) VALUES (?, ?, ?, ?, ?, ?)
		`,
		entry.FileName,
		entry.BankCode,
		entry.BatchNumber,
		entry.RecordCount,
		entry.TotalAmountHalalas,
		entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert export log entry: %w", err)
	}

	return nil
}

// RecentExports returns the latest export log entries, newest first.
func (s ExportLogStore) RecentExports(ctx context.Context, limit int) ([]core.ExportLogEntry, error) {
	rows, err := s.querier().QueryContext(ctx, `
			SELECT file_name, bank_code, batch_number, record_count, total_amount_halalas, created_at
			FROM export_log
			ORDER BY id DESC
			LIMIT ?
		`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query export log: %w", err)
	}
	defer rows.Close()

	var entries []core.ExportLogEntry
	for rows.Next() {
		var entry core.ExportLogEntry
		var createdAt string
		if err := rows.Scan(
			&entry.FileName,
			&entry.BankCode,
			&entry.BatchNumber,
			&entry.RecordCount,
			&entry.TotalAmountHalalas,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export log entry: %w", err)
		}
		entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s ExportLogStore) querier() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s ExportLogStore) Atomic(ctx context.Context, cb func(core.ExportLogRepository) error) error {
	// SQLite doesn't support SELECT FOR UPDATE, but BEGIN IMMEDIATE
	// (configured via _txlock=immediate in the DSN) acquires a reserved
	// lock up front, so there is no race window between the sequence read
	// and its increment.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := ExportLogStore{
		tx: tx,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
