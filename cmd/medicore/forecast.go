package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medicore-hq/medicore/internal/model"
)

func forecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <item-id>",
		Short: "Run an AI demand forecast for one inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID := args[0]

			var item *model.InventoryItem
			for _, candidate := range model.DemoInventory() {
				if strings.EqualFold(candidate.ID, itemID) {
					item = &candidate
					break
				}
			}
			if item == nil {
				return fmt.Errorf("unknown inventory item: %s", itemID)
			}

			adv, err := createAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			result, err := adv.ForecastInventory(cmd.Context(), *item)
			if err != nil {
				return err
			}

			fmt.Printf("Item:      %s (%s)\n", item.Name, item.ID)
			fmt.Printf("Order:     %d %s\n", result.Quantity, item.Unit)
			fmt.Printf("Risk:      %s\n", result.Risk)
			fmt.Printf("Reasoning: %s\n", result.Reasoning)
			return nil
		},
	}
}
