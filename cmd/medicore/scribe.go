package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medicore-hq/medicore/internal/prompt"
)

func scribeCmd() *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "scribe [file]",
		Short: "Convert raw clinical notes into structured documentation",
		Long: `Reads raw clinical notes from a file (or stdin when no file is given)
and produces a structured document. Sections with no source information
are marked "Not mentioned in raw notes" rather than invented.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format prompt.DocType
			switch strings.ToLower(docType) {
			case "soap":
				format = prompt.DocSOAP
			case "discharge":
				format = prompt.DocDischargeSummary
			default:
				return fmt.Errorf("invalid document type: %s (want soap or discharge)", docType)
			}

			var raw []byte
			var err error
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read notes: %w", err)
			}

			notes := strings.TrimSpace(string(raw))
			if notes == "" {
				return fmt.Errorf("no clinical notes provided")
			}

			adv, err := createAdvisor(cmd.Context())
			if err != nil {
				return err
			}

			text, err := adv.StructureNotes(cmd.Context(), notes, format)
			if err != nil {
				return err
			}

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&docType, "type", "soap", "document type (soap, discharge)")
	return cmd
}
