package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"paybatch/internal/registry"
)

const testCatalog = `
banks:
  - code: RJHI
    display_name: Al Rajhi Bank
    identifier_prefix: "80"
    supports_bulk: true
    max_bulk_records: 5000
    cutoff_time: "14:00"
    working_days: [Sunday, Monday, Tuesday, Wednesday, Thursday]
    sheet_label: Payments
    export_schema:
      - { position: 1, field_name: payee_name, header: "Beneficiary Name", data_type: TEXT, required: true }
      - { position: 2, field_name: account_identifier, header: "IBAN", data_type: TEXT, required: true }
      - { position: 3, field_name: amount, header: "Amount (SAR)", data_type: CURRENCY, required: true }
  - code: NCB
    display_name: Saudi National Bank
    identifier_prefix: "10"
    supports_bulk: true
    max_bulk_records: 2000
    cutoff_time: "13:30"
    working_days: [Sunday, Monday, Tuesday, Wednesday, Thursday]
    export_schema:
      - { position: 1, field_name: payee_name, header: "Name", data_type: TEXT, required: true }
      - { position: 2, field_name: amount, header: "Amount", data_type: CURRENCY, required: true }
`

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg, err := registry.Parse([]byte(testCatalog))
	require.NoError(t, err)
	return reg
}

func TestService_ValidateBatch(t *testing.T) {
	t.Parallel()

	service := NewService(testRegistry(t), nil)

	t.Run("unknown_bank_returns_configuration_error", func(t *testing.T) {
		t.Parallel()

		_, err := service.ValidateBatch("GHOST", []PaymentRecord{validRecord()})
		require.ErrorIs(t, err, ErrBankNotFound)
	})

	t.Run("valid_batch", func(t *testing.T) {
		t.Parallel()

		summary, err := service.ValidateBatch("RJHI", []PaymentRecord{validRecord()})
		require.NoError(t, err)
		require.True(t, summary.Valid)
		require.Equal(t, 1, summary.ValidCount)
	})

	t.Run("bad_records_reported_in_summary_not_as_error", func(t *testing.T) {
		t.Parallel()

		summary, err := service.ValidateBatch("RJHI", []PaymentRecord{{ID: "bad"}})
		require.NoError(t, err)
		require.False(t, summary.Valid)
		require.Equal(t, 1, summary.InvalidCount)
	})
}

func TestService_Schedule(t *testing.T) {
	t.Parallel()

	service := NewService(testRegistry(t), nil)

	monday := time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)
	assessment, err := service.Schedule("RJHI", monday)
	require.NoError(t, err)
	require.True(t, assessment.CanAcceptToday)

	_, err = service.Schedule("GHOST", monday)
	require.ErrorIs(t, err, ErrBankNotFound)
}

func TestService_ValidateIdentifier(t *testing.T) {
	t.Parallel()

	service := NewService(testRegistry(t), nil)

	res := service.ValidateIdentifier("SA0380000000608010167519")
	require.True(t, res.IsValid)
	require.Equal(t, "RJHI", res.ResolvedBankCode)
	require.Equal(t, "Al Rajhi Bank", res.ResolvedBankName)
}

func TestService_ExportBatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		request       ExportRequest
		mockSetup     func(t *testing.T, m *MockExportLogRepository)
		check            func(t *testing.T, doc ExportDocument)
		expectedError    error
		expectedContains string
	}{
		{
			name: "allocates_batch_number_when_absent",
			request: ExportRequest{
				BankCode: "RJHI",
				Records:  []PaymentRecord{validRecord()},
				Comment:  "March payroll",
				Now:      now,
			},
			mockSetup: func(t *testing.T, m *MockExportLogRepository) {
				m.EXPECT().
					Atomic(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cb func(ExportLogRepository) error) error {
						ctrl := gomock.NewController(t)
						txRepo := NewMockExportLogRepository(ctrl)

						txRepo.EXPECT().
							NextBatchNumber(gomock.Any(), "RJHI", now).
							Return("004", nil)

						return cb(txRepo)
					}).
					Times(1)

				m.EXPECT().
					RecordExport(gomock.Any(), ExportLogEntry{
						FileName:           "RJHI_20250303_004.xlsx",
						BankCode:           "RJHI",
						BatchNumber:        "004",
						RecordCount:        1,
						TotalAmountHalalas: 250_000,
						CreatedAt:          now,
					}).
					Return(nil).
					Times(1)
			},
			check: func(t *testing.T, doc ExportDocument) {
				require.Equal(t, "RJHI_20250303_004.xlsx", doc.FileName)
				require.Equal(t, "004", doc.BatchNumber)
			},
		},
		{
			name: "uses_supplied_batch_number",
			request: ExportRequest{
				BankCode:    "RJHI",
				Records:     []PaymentRecord{validRecord()},
				BatchNumber: "777",
				Now:         now,
			},
			mockSetup: func(t *testing.T, m *MockExportLogRepository) {
				m.EXPECT().
					RecordExport(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(1)
			},
			check: func(t *testing.T, doc ExportDocument) {
				require.Equal(t, "RJHI_20250303_777.xlsx", doc.FileName)
			},
		},
		{
			name: "unknown_bank",
			request: ExportRequest{
				BankCode: "GHOST",
				Records:  []PaymentRecord{validRecord()},
				Now:      now,
			},
			mockSetup:     func(t *testing.T, m *MockExportLogRepository) {},
			expectedError: ErrBankNotFound,
		},
		{
			name: "empty_batch",
			request: ExportRequest{
				BankCode: "RJHI",
				Now:      now,
			},
			mockSetup:     func(t *testing.T, m *MockExportLogRepository) {},
			expectedError: ErrEmptyBatch,
		},
		{
			name: "invalid_batch_is_refused",
			request: ExportRequest{
				BankCode: "RJHI",
				Records:  []PaymentRecord{{ID: "bad"}},
				Now:      now,
			},
			mockSetup:     func(t *testing.T, m *MockExportLogRepository) {},
			expectedError: ErrBatchInvalid,
		},
		{
			name: "record_export_failure_propagates",
			request: ExportRequest{
				BankCode:    "RJHI",
				Records:     []PaymentRecord{validRecord()},
				BatchNumber: "001",
				Now:         now,
			},
			mockSetup: func(t *testing.T, m *MockExportLogRepository) {
				m.EXPECT().
					RecordExport(gomock.Any(), gomock.Any()).
					Return(errors.New("disk full")).
					Times(1)
			},
			expectedContains: "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := NewMockExportLogRepository(ctrl)
			tt.mockSetup(t, mockRepo)

			service := NewService(testRegistry(t), mockRepo)

			doc, err := service.ExportBatch(context.Background(), tt.request)

			if tt.expectedContains != "" {
				require.ErrorContains(t, err, tt.expectedContains)
				return
			}
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, doc)
			}
		})
	}
}

func TestService_ExportBatch_NilRepositoryFallsBackToTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 3, 10, 15, 42, 0, time.UTC)
	service := NewService(testRegistry(t), nil)

	doc, err := service.ExportBatch(context.Background(), ExportRequest{
		BankCode: "RJHI",
		Records:  []PaymentRecord{validRecord()},
		Now:      now,
	})

	require.NoError(t, err)
	require.Equal(t, "101542", doc.BatchNumber)
	require.Equal(t, "RJHI_20250303_101542.xlsx", doc.FileName)
}
