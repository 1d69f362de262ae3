package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"paybatch/internal/registry"
)

// Amounts are carried as int64 halalas (SAR minor units) end to end; the
// HTTP and export boundaries parse/format decimal strings.
const (
	// MaxAmountHalalas is the per-payment ceiling of 999,999,999.99 SAR.
	MaxAmountHalalas int64 = 99_999_999_999

	// LargeAmountHalalas is the 50,000 SAR threshold above which a payment
	// gets an additional-verification warning. The boundary is exclusive.
	LargeAmountHalalas int64 = 5_000_000

	// SmallAmountHalalas is the 1 SAR threshold below which a payment gets
	// a very-small-amount warning.
	SmallAmountHalalas int64 = 100
)

// PaymentRecord is one payee disbursement, supplied by the caller. The
// engine never persists these.
type PaymentRecord struct {
	ID                string
	PayeeName         string
	AmountHalalas     int64
	BankCode          string // optional, may be unset
	AccountIdentifier string // optional structured account identifier
	NationalID        string // optional
	ProjectReference  string // optional
}

// ParseAmount converts a decimal SAR string into int64 halalas without going
// through floating point, so "0.1" style inputs stay exact.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}
	if strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("amount cannot be negative")
	}

	whole := amount
	frac := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		whole, frac = amount[:i], amount[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than 2 decimal places", amount)
	}
	// ParseInt alone would let a sign through in either part ("5.-1").
	if !isDecimalDigits(whole) || !isDecimalDigits(frac) {
		return 0, fmt.Errorf("invalid amount format: %q", amount)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	wholeValue, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}
	fracValue, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}

	return wholeValue*100 + fracValue, nil
}

func isDecimalDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatHalalas renders an amount in halalas as a decimal SAR string.
func FormatHalalas(halalas int64) string {
	sign := ""
	if halalas < 0 {
		sign = "-"
		halalas = -halalas
	}
	return fmt.Sprintf("%s%d.%02d", sign, halalas/100, halalas%100)
}

// ValidationResult is the findings for one payment record. A record is
// valid iff it accumulated zero hard errors; warnings never affect validity.
type ValidationResult struct {
	PaymentID string
	IsValid   bool
	Errors    []string
	Warnings  []string
}

// BatchValidationSummary aggregates per-record results with batch-level
// checks. Valid is true only when there are no batch errors and every
// record passed.
type BatchValidationSummary struct {
	Valid              bool
	BatchErrors        []string
	BatchWarnings      []string
	Results            []ValidationResult
	ValidCount         int
	InvalidCount       int
	TotalAmountHalalas int64
}

// Cell is one typed value in an export row.
type Cell struct {
	Type  registry.DataType
	Value string
}

// ExportDocument is the bank-ready rendering of a validated batch. It is
// immutable after construction; serializing it to actual file bytes is the
// caller's concern.
type ExportDocument struct {
	FileName           string
	SheetLabel         string
	BankCode           string
	BatchNumber        string
	Headers            []string
	Rows               [][]Cell
	TotalAmountHalalas int64
	RecordCount        int
	GeneratedAt        time.Time
	ProcessingDate     time.Time
}

// ExportLogEntry is the metadata recorded for one generated export file.
// Payment records themselves are never stored.
type ExportLogEntry struct {
	FileName           string
	BankCode           string
	BatchNumber        string
	RecordCount        int
	TotalAmountHalalas int64
	CreatedAt          time.Time
}
