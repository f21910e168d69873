package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hq/medicore/internal/model"
)

func analyzeCmd() *cobra.Command {
	var accountID string
	var threshold string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run AI root-cause analysis on the demo ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adv, err := createAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			text, err := adv.AnalyzeAnomaly(cmd.Context(), model.DemoTransactions(), accountID, threshold)
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "ACC-MAINT", "account to analyze for cost spikes")
	cmd.Flags().StringVar(&threshold, "threshold", "25%", "deviation threshold")
	return cmd
}
