package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"paybatch/internal/core"
)

func (h Handler) GetBanks(w http.ResponseWriter, r *http.Request) {
	banks := h.engine.Banks()

	out := make([]BankDTO, 0, len(banks))
	for _, b := range banks {
		out = append(out, toBankDTO(b))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetBankSchedule reports whether the bank can still accept a submission at
// the reference time, which defaults to now and can be overridden with an
// RFC3339 "at" query parameter.
func (h Handler) GetBankSchedule(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	at := h.now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "Invalid 'at' timestamp, expected RFC3339", http.StatusBadRequest)
			return
		}
		at = parsed
	}

	assessment, err := h.engine.Schedule(code, at)
	if err != nil {
		if errors.Is(err, core.ErrBankNotFound) {
			http.Error(w, "Bank not found", http.StatusNotFound)
			return
		}

		h.logger.ErrorContext(r.Context(), "Failed to assess schedule", "error", err)
		http.Error(w, "Failed to assess schedule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(code, assessment))
}

func (h Handler) PostValidateIdentifier(w http.ResponseWriter, r *http.Request) {
	var req ValidateIdentifierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.engine.ValidateIdentifier(req.Identifier)

	writeJSON(w, http.StatusOK, toIdentifierResponse(req.Identifier, res))
}
