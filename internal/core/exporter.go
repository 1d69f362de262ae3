package core

import (
	"fmt"
	"strconv"
	"time"

	"paybatch/internal/iban"
	"paybatch/internal/registry"
	"paybatch/internal/schedule"
)

// ExportOptions carries the caller-supplied inputs of one export request.
// BatchNumber uniqueness is the caller's responsibility; the exporter only
// formats it into the file name.
type ExportOptions struct {
	Comment     string
	BatchNumber string
	Now         time.Time
}

// BuildExport renders a validated batch into the bank's column layout. The
// caller must hold a BatchValidationSummary with zero hard errors; nothing
// is re-validated here. Column resolution never fails: absent source values
// degrade to the column default or an empty cell.
func BuildExport(bank registry.BankDefinition, records []PaymentRecord, opts ExportOptions) ExportDocument {
	doc := ExportDocument{
		FileName:       exportFileName(bank, opts.Now, opts.BatchNumber),
		SheetLabel:     bank.SheetLabel,
		BankCode:       bank.Code,
		BatchNumber:    opts.BatchNumber,
		GeneratedAt:    opts.Now,
		ProcessingDate: processingDate(bank, opts.Now),
	}

	for _, col := range bank.ExportSchema {
		doc.Headers = append(doc.Headers, col.Header)
	}

	for i, rec := range records {
		row := make([]Cell, 0, len(bank.ExportSchema))
		for _, col := range bank.ExportSchema {
			row = append(row, Cell{
				Type:  col.DataType,
				Value: resolveField(col, rec, i+1, opts.Comment, doc.ProcessingDate),
			})
		}
		doc.Rows = append(doc.Rows, row)
		doc.TotalAmountHalalas += rec.AmountHalalas
	}
	doc.RecordCount = len(doc.Rows)

	return doc
}

func exportFileName(bank registry.BankDefinition, now time.Time, batchNumber string) string {
	return fmt.Sprintf("%s_%s_%s%s", bank.Code, now.Format("20060102"), batchNumber, bank.FileExtension)
}

// processingDate is the calendar day the bank will process the batch: today
// when the submission still makes the cutoff, otherwise the next working day.
func processingDate(bank registry.BankDefinition, now time.Time) time.Time {
	if schedule.Assess(bank, now).CanAcceptToday {
		return now
	}
	return schedule.NextWindow(bank, now)
}

func resolveField(col registry.ColumnDefinition, rec PaymentRecord, serial int, comment string, processing time.Time) string {
	var value string

	switch col.FieldName {
	case "serial":
		value = strconv.Itoa(serial)
	case "payee_name":
		value = rec.PayeeName
	case "amount":
		value = FormatHalalas(rec.AmountHalalas)
	case "account_identifier":
		value = iban.Normalize(rec.AccountIdentifier)
	case "national_id":
		value = rec.NationalID
	case "project_reference":
		value = rec.ProjectReference
	case "payment_date":
		value = processing.Format("2006-01-02")
	case "description":
		value = comment
		if value == "" {
			value = fmt.Sprintf("Payment for %s", rec.PayeeName)
		}
	}

	if value == "" {
		value = col.DefaultValue
	}
	if col.DataType == registry.TypeText && col.MaxLength > 0 {
		value = truncateRunes(value, col.MaxLength)
	}

	return value
}

// truncateRunes cuts the value to at most max runes. Validation counts payee
// name length in runes, so truncation must not split a multi-byte character.
func truncateRunes(value string, max int) string {
	count := 0
	for i := range value {
		if count == max {
			return value[:i]
		}
		count++
	}
	return value
}
