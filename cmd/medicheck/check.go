package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

func newCheckCmd() *cobra.Command {
	var (
		instructions string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "check <text>",
		Short: "Fact-check a piece of text",
		Long:  "Sends the text to the model with the search tool context and prints the corrections.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, strings.Join(args, " "), instructions, asJSON)
		},
	}

	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Custom instructions for the fact-check")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON result")

	return cmd
}

func runCheck(cmd *cobra.Command, text, instructions string, asJSON bool) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		result, err := deps.ValidateHandler.HandleText(cmd.Context(), cliSession, text, instructions)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result.Validation); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		} else {
			printValidation(os.Stdout, result.Validation)
		}

		if result.Failed {
			return errors.New("fact-check failed")
		}
		return nil
	})
}

// printValidation writes a human-readable fact-check result.
func printValidation(w io.Writer, v *entities.MedicalValidation) {
	fmt.Fprintf(w, "Summary: %s\n", v.Summary)

	if !v.HasCorrections() {
		fmt.Fprintln(w, "\nNo incorrect statements found.")
	} else {
		fmt.Fprintf(w, "\nFound %d incorrect statements:\n\n", len(v.ValidationResults))
		for i, r := range v.ValidationResults {
			fmt.Fprintf(w, "%d. Incorrect: %s\n", i+1, r.IncorrectText)
			fmt.Fprintf(w, "   Correct:   %s\n", r.CorrectText)
		}
	}

	for _, warning := range v.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
