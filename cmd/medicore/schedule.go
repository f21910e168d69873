package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medicore-hq/medicore/internal/model"
)

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run AI shift optimization for the demo roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			adv, err := createAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			text, err := adv.OptimizeSchedule(cmd.Context(), model.DemoStaff())
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}
}
