package http

import (
	"fmt"
	"time"

	"paybatch/internal/core"
	"paybatch/internal/iban"
	"paybatch/internal/registry"
	"paybatch/internal/schedule"
)

type PaymentDTO struct {
	ID                string `json:"id" validate:"required"`
	PayeeName         string `json:"payee_name" validate:"required"`
	Amount            string `json:"amount" validate:"required"`
	BankCode          string `json:"bank_code"`
	AccountIdentifier string `json:"account_identifier"`
	NationalID        string `json:"national_id"`
	ProjectReference  string `json:"project_reference"`
}

type ValidateBatchRequest struct {
	BankCode string       `json:"bank_code" validate:"required"`
	Payments []PaymentDTO `json:"payments" validate:"required,min=1,dive"`
}

type ExportBatchRequest struct {
	BankCode    string       `json:"bank_code" validate:"required"`
	Payments    []PaymentDTO `json:"payments" validate:"required,min=1,dive"`
	Comment     string       `json:"comment"`
	BatchNumber string       `json:"batch_number"`
}

type ValidateIdentifierRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

func (p PaymentDTO) ToDomain() (core.PaymentRecord, error) {
	halalas, err := core.ParseAmount(p.Amount)
	if err != nil {
		return core.PaymentRecord{}, fmt.Errorf("invalid amount for payment %s: %w", p.ID, err)
	}

	return core.PaymentRecord{
		ID:                p.ID,
		PayeeName:         p.PayeeName,
		AmountHalalas:     halalas,
		BankCode:          p.BankCode,
		AccountIdentifier: p.AccountIdentifier,
		NationalID:        p.NationalID,
		ProjectReference:  p.ProjectReference,
	}, nil
}

func toDomainPayments(payments []PaymentDTO) ([]core.PaymentRecord, error) {
	records := make([]core.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		rec, err := p.ToDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

type ValidationResultDTO struct {
	PaymentID string   `json:"payment_id"`
	IsValid   bool     `json:"is_valid"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

type BatchSummaryResponse struct {
	Valid         bool                  `json:"valid"`
	BatchErrors   []string              `json:"batch_errors,omitempty"`
	BatchWarnings []string              `json:"batch_warnings,omitempty"`
	Results       []ValidationResultDTO `json:"results"`
	ValidCount    int                   `json:"valid_count"`
	InvalidCount  int                   `json:"invalid_count"`
	TotalAmount   string                `json:"total_amount"`
}

func toBatchSummaryResponse(summary core.BatchValidationSummary) BatchSummaryResponse {
	resp := BatchSummaryResponse{
		Valid:         summary.Valid,
		BatchErrors:   summary.BatchErrors,
		BatchWarnings: summary.BatchWarnings,
		ValidCount:    summary.ValidCount,
		InvalidCount:  summary.InvalidCount,
		TotalAmount:   core.FormatHalalas(summary.TotalAmountHalalas),
	}
	for _, r := range summary.Results {
		resp.Results = append(resp.Results, ValidationResultDTO{
			PaymentID: r.PaymentID,
			IsValid:   r.IsValid,
			Errors:    r.Errors,
			Warnings:  r.Warnings,
		})
	}
	return resp
}

type IdentifierResponse struct {
	IsValid          bool     `json:"is_valid"`
	Formatted        string   `json:"formatted"`
	Errors           []string `json:"errors,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
	ResolvedBankCode string   `json:"resolved_bank_code,omitempty"`
	ResolvedBankName string   `json:"resolved_bank_name,omitempty"`
	AccountNumber    string   `json:"account_number,omitempty"`
	CheckDigits      string   `json:"check_digits,omitempty"`
}

func toIdentifierResponse(identifier string, res iban.Result) IdentifierResponse {
	return IdentifierResponse{
		IsValid:          res.IsValid,
		Formatted:        iban.Format(identifier),
		Errors:           res.Errors,
		Warnings:         res.Warnings,
		ResolvedBankCode: res.ResolvedBankCode,
		ResolvedBankName: res.ResolvedBankName,
		AccountNumber:    res.AccountNumber,
		CheckDigits:      res.CheckDigits,
	}
}

type BankDTO struct {
	Code             string `json:"code"`
	DisplayName      string `json:"display_name"`
	IdentifierPrefix string `json:"identifier_prefix"`
	SupportsBulk     bool   `json:"supports_bulk"`
	MaxBulkRecords   int    `json:"max_bulk_records"`
	CutoffTime       string `json:"cutoff_time"`
}

func toBankDTO(bank registry.BankDefinition) BankDTO {
	return BankDTO{
		Code:             bank.Code,
		DisplayName:      bank.DisplayName,
		IdentifierPrefix: bank.IdentifierPrefix,
		SupportsBulk:     bank.SupportsBulk,
		MaxBulkRecords:   bank.MaxBulkRecords,
		CutoffTime:       bank.Cutoff.String(),
	}
}

type ScheduleResponse struct {
	BankCode        string `json:"bank_code"`
	IsWorkingDay    bool   `json:"is_working_day"`
	CanAcceptToday  bool   `json:"can_accept_today"`
	TimeUntilCutoff string `json:"time_until_cutoff,omitempty"`
}

func toScheduleResponse(bankCode string, a schedule.Assessment) ScheduleResponse {
	resp := ScheduleResponse{
		BankCode:       bankCode,
		IsWorkingDay:   a.IsWorkingDay,
		CanAcceptToday: a.CanAcceptToday,
	}
	if a.TimeUntilCutoff != nil {
		resp.TimeUntilCutoff = a.TimeUntilCutoff.Round(time.Second).String()
	}
	return resp
}
