package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paybatch/internal/iban"
)

var ibanCmd = &cobra.Command{
	Use:   "iban <identifier>",
	Short: "Validate a structured account identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		res := iban.Validate(args[0], reg)

		fmt.Printf("identifier: %s\n", iban.Format(args[0]))
		if res.IsValid {
			fmt.Println("valid:      yes")
			if res.ResolvedBankName != "" {
				fmt.Printf("bank:       %s (%s)\n", res.ResolvedBankName, res.ResolvedBankCode)
			}
			fmt.Printf("account:    %s\n", res.AccountNumber)
		} else {
			fmt.Println("valid:      no")
		}
		for _, e := range res.Errors {
			fmt.Printf("error:      %s\n", e)
		}
		for _, w := range res.Warnings {
			fmt.Printf("warning:    %s\n", w)
		}

		if !res.IsValid {
			return fmt.Errorf("identifier failed validation")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ibanCmd)
}
