package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"paybatch/internal/core"
	"paybatch/internal/iban"
	"paybatch/internal/registry"
	"paybatch/internal/schedule"
	"paybatch/internal/xlsx"
)

//go:generate go tool go.uber.org/mock/mockgen -source=post_batches.go -destination=engine_mock.go -package=http

// Engine is the validation and export surface consumed by the handlers.
type Engine interface {
	Banks() []registry.BankDefinition
	Bank(code string) (registry.BankDefinition, bool)
	ValidateIdentifier(id string) iban.Result
	Schedule(bankCode string, now time.Time) (schedule.Assessment, error)
	ValidateBatch(bankCode string, records []core.PaymentRecord) (core.BatchValidationSummary, error)
	ExportBatch(ctx context.Context, req core.ExportRequest) (core.ExportDocument, error)
}

type Handler struct {
	engine   Engine
	logger   core.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(engine Engine, logger core.Logger) Handler {
	return Handler{
		engine:   engine,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (h Handler) PostValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := toDomainPayments(req.Payments)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.engine.ValidateBatch(req.BankCode, records)
	if err != nil {
		if errors.Is(err, core.ErrBankNotFound) {
			http.Error(w, "Bank not found", http.StatusNotFound)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to validate batch", "error", err)
		http.Error(w, "Failed to validate batch", http.StatusInternalServerError)
		return
	}

	batchValidations.WithLabelValues(req.BankCode, outcomeLabel(summary.Valid)).Inc()

	writeJSON(w, http.StatusOK, toBatchSummaryResponse(summary))
}

func (h Handler) PostExportBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := toDomainPayments(req.Payments)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.engine.ExportBatch(ctx, core.ExportRequest{
		BankCode:    req.BankCode,
		Records:     records,
		Comment:     req.Comment,
		BatchNumber: req.BatchNumber,
		Now:         h.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrBankNotFound):
			http.Error(w, "Bank not found", http.StatusNotFound)
		case errors.Is(err, core.ErrEmptyBatch), errors.Is(err, core.ErrBatchInvalid):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.logger.ErrorContext(ctx, "Failed to export batch", "error", err)
			http.Error(w, "Failed to export batch", http.StatusInternalServerError)
		}
		batchExports.WithLabelValues(req.BankCode, "failure").Inc()
		return
	}

	payload, err := xlsx.Write(doc)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to serialize export", "error", err)
		http.Error(w, "Failed to serialize export", http.StatusInternalServerError)
		batchExports.WithLabelValues(req.BankCode, "failure").Inc()
		return
	}

	batchExports.WithLabelValues(req.BankCode, "success").Inc()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func outcomeLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
