package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

func TestPrintValidation(t *testing.T) {
	v := &entities.MedicalValidation{
		Summary: "One claim is outdated.",
		ValidationResults: []entities.ValidationResult{
			{IncorrectText: "Vitamin C cures colds.", CorrectText: "Vitamin C does not cure colds."},
		},
		Warnings: []string{"validation_results[1]: not an object"},
	}

	var buf bytes.Buffer
	printValidation(&buf, v)

	out := buf.String()
	assert.Contains(t, out, "Summary: One claim is outdated.\n")
	assert.Contains(t, out, "Found 1 incorrect statements:")
	assert.Contains(t, out, "1. Incorrect: Vitamin C cures colds.\n")
	assert.Contains(t, out, "   Correct:   Vitamin C does not cure colds.\n")
	assert.Contains(t, out, "warning: validation_results[1]: not an object\n")
}

func TestPrintValidation_NoCorrections(t *testing.T) {
	var buf bytes.Buffer
	printValidation(&buf, &entities.MedicalValidation{Summary: "All accurate."})

	assert.Equal(t, "Summary: All accurate.\n\nNo incorrect statements found.\n", buf.String())
}
