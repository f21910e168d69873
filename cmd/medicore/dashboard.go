package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/medicore-hq/medicore/internal/model"
	"github.com/medicore-hq/medicore/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Run the interactive dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context())
		},
	}
}

func runDashboard(ctx context.Context) error {
	adv, err := createAdvisor(ctx)
	if err != nil {
		return err
	}

	return tui.Run(ctx, tui.Config{
		Advisor:      adv,
		Transactions: model.DemoTransactions(),
		Inventory:    model.DemoInventory(),
		Staff:        model.DemoStaff(),
	})
}
