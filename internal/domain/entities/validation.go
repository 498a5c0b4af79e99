// Package entities contains core domain data structures.
package entities

// ValidationResult is one factual correction produced by the model.
type ValidationResult struct {
	IncorrectText string `json:"incorrect_text"`
	CorrectText   string `json:"correct_text"`
}

// MedicalValidation is the structured answer to a fact-check request.
// ValidationResults only ever holds statements judged incorrect.
type MedicalValidation struct {
	Summary           string             `json:"summary"`
	ValidationResults []ValidationResult `json:"validation_results"`

	// Warnings lists entries the normalizer dropped from the model output.
	Warnings []string `json:"warnings,omitempty"`

	// Failed marks an error placeholder built after the model call failed.
	Failed bool `json:"-"`
}

// Placeholder values used when the model call fails.
const (
	ErrorSummary     = "Error processing the query"
	ErrorCorrectText = "Unable to validate the information due to a processing error"
)

// NewErrorValidation builds the error-shaped result returned when the model
// could not be invoked.
func NewErrorValidation(err error) *MedicalValidation {
	return &MedicalValidation{
		Summary: ErrorSummary,
		ValidationResults: []ValidationResult{
			{
				IncorrectText: err.Error(),
				CorrectText:   ErrorCorrectText,
			},
		},
		Failed: true,
	}
}

// HasCorrections reports whether any incorrect statement was found.
func (v *MedicalValidation) HasCorrections() bool {
	return len(v.ValidationResults) > 0
}
