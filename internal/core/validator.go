package core

import (
	"fmt"
	"unicode/utf8"

	"paybatch/internal/iban"
	"paybatch/internal/registry"
)

const (
	payeeNameMinLength = 2
	payeeNameMaxLength = 100
)

// ValidateRecord checks one payment against the target bank's rules. All
// violations are collected; nothing short-circuits, so the caller always
// sees the complete list in one pass.
func ValidateRecord(banks iban.BankResolver, target registry.BankDefinition, rec PaymentRecord) ValidationResult {
	res := ValidationResult{PaymentID: rec.ID}

	nameLen := utf8.RuneCountInString(rec.PayeeName)
	switch {
	case nameLen == 0:
		res.Errors = append(res.Errors, "payee name is required")
	case nameLen < payeeNameMinLength || nameLen > payeeNameMaxLength:
		res.Errors = append(res.Errors, fmt.Sprintf("payee name must be between %d and %d characters", payeeNameMinLength, payeeNameMaxLength))
	}

	switch {
	case rec.AmountHalalas <= 0:
		res.Errors = append(res.Errors, "amount must be greater than zero")
	case rec.AmountHalalas > MaxAmountHalalas:
		res.Errors = append(res.Errors, fmt.Sprintf("amount exceeds the maximum of %s SAR", FormatHalalas(MaxAmountHalalas)))
	default:
		if rec.AmountHalalas > LargeAmountHalalas {
			res.Warnings = append(res.Warnings, fmt.Sprintf("amount above %s SAR may require additional verification", FormatHalalas(LargeAmountHalalas)))
		}
		if rec.AmountHalalas < SmallAmountHalalas {
			res.Warnings = append(res.Warnings, "very small amount")
		}
	}

	if rec.AccountIdentifier != "" {
		idRes := iban.Validate(rec.AccountIdentifier, banks)
		res.Errors = append(res.Errors, idRes.Errors...)
		res.Warnings = append(res.Warnings, idRes.Warnings...)
	}

	switch {
	case rec.BankCode == "":
		res.Warnings = append(res.Warnings, "bank information not specified")
	case rec.BankCode != target.Code:
		res.Errors = append(res.Errors, fmt.Sprintf("payment is assigned to a different bank (%s)", rec.BankCode))
	}

	if rec.ProjectReference == "" {
		res.Warnings = append(res.Warnings, "project reference not specified")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// ValidateBatch runs per-record validation over the whole batch and applies
// the batch-level checks: empty batch, the bank's bulk record ceiling, and
// mixed bank codes. It is referentially transparent; identical input always
// yields an identical summary.
func ValidateBatch(banks iban.BankResolver, target registry.BankDefinition, records []PaymentRecord) BatchValidationSummary {
	var summary BatchValidationSummary

	if len(records) == 0 {
		summary.BatchErrors = append(summary.BatchErrors, "no payments selected")
		return summary
	}

	if target.MaxBulkRecords > 0 && len(records) > target.MaxBulkRecords {
		summary.BatchErrors = append(summary.BatchErrors, fmt.Sprintf(
			"batch of %d payments exceeds the %s limit of %d records",
			len(records), target.DisplayName, target.MaxBulkRecords,
		))
	}

	distinct := make(map[string]struct{})
	for _, rec := range records {
		res := ValidateRecord(banks, target, rec)
		summary.Results = append(summary.Results, res)
		if res.IsValid {
			summary.ValidCount++
		} else {
			summary.InvalidCount++
		}
		summary.TotalAmountHalalas += rec.AmountHalalas
		if rec.BankCode != "" {
			distinct[rec.BankCode] = struct{}{}
		}
	}

	if len(distinct) > 1 {
		summary.BatchWarnings = append(summary.BatchWarnings, fmt.Sprintf(
			"batch references %d distinct banks", len(distinct),
		))
	}

	summary.Valid = len(summary.BatchErrors) == 0 && summary.InvalidCount == 0
	return summary
}
