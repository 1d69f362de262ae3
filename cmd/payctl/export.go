package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"paybatch/internal/core"
	"paybatch/internal/xlsx"
)

var (
	exportBank    string
	exportIn      string
	exportOut     string
	exportComment string
	exportBatch   string
)

// paymentInput is the JSON shape payctl reads, with amounts as decimal
// strings the same way the HTTP API takes them.
type paymentInput struct {
	ID                string `json:"id"`
	PayeeName         string `json:"payee_name"`
	Amount            string `json:"amount"`
	BankCode          string `json:"bank_code"`
	AccountIdentifier string `json:"account_identifier"`
	NationalID        string `json:"national_id"`
	ProjectReference  string `json:"project_reference"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Validate a payments file and write a bank export spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(exportIn)
		if err != nil {
			return fmt.Errorf("failed to read payments file: %w", err)
		}

		var inputs []paymentInput
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("failed to parse payments file: %w", err)
		}

		records := make([]core.PaymentRecord, 0, len(inputs))
		for _, in := range inputs {
			halalas, err := core.ParseAmount(in.Amount)
			if err != nil {
				return fmt.Errorf("payment %s: %w", in.ID, err)
			}
			records = append(records, core.PaymentRecord{
				ID:                in.ID,
				PayeeName:         in.PayeeName,
				AmountHalalas:     halalas,
				BankCode:          in.BankCode,
				AccountIdentifier: in.AccountIdentifier,
				NationalID:        in.NationalID,
				ProjectReference:  in.ProjectReference,
			})
		}

		service := core.NewService(reg, nil)

		summary, err := service.ValidateBatch(exportBank, records)
		if err != nil {
			return err
		}
		printSummary(summary)
		if !summary.Valid {
			return fmt.Errorf("batch failed validation, not exporting")
		}

		doc, err := service.ExportBatch(cmd.Context(), core.ExportRequest{
			BankCode:    exportBank,
			Records:     records,
			Comment:     exportComment,
			BatchNumber: exportBatch,
			Now:         time.Now(),
		})
		if err != nil {
			return err
		}

		payload, err := xlsx.Write(doc)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = doc.FileName
		}
		if err := os.WriteFile(out, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}

		fmt.Printf("wrote %s: %d records, total %s SAR\n", out, doc.RecordCount, core.FormatHalalas(doc.TotalAmountHalalas))
		return nil
	},
}

func printSummary(summary core.BatchValidationSummary) {
	fmt.Printf("validated %d payments: %d valid, %d invalid\n",
		len(summary.Results), summary.ValidCount, summary.InvalidCount)
	for _, e := range summary.BatchErrors {
		fmt.Printf("batch error: %s\n", e)
	}
	for _, w := range summary.BatchWarnings {
		fmt.Printf("batch warning: %s\n", w)
	}
	for _, r := range summary.Results {
		for _, e := range r.Errors {
			fmt.Printf("  %s: error: %s\n", r.PaymentID, e)
		}
		for _, w := range r.Warnings {
			fmt.Printf("  %s: warning: %s\n", r.PaymentID, w)
		}
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportBank, "bank", "", "target bank code (required)")
	exportCmd.Flags().StringVar(&exportIn, "in", "", "path to a JSON payments file (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (defaults to the generated file name)")
	exportCmd.Flags().StringVar(&exportComment, "comment", "", "free-text batch comment")
	exportCmd.Flags().StringVar(&exportBatch, "batch", "", "batch number (defaults to a timestamp token)")
	exportCmd.MarkFlagRequired("bank")
	exportCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(exportCmd)
}
