package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/medicheck/medicheck/internal/domain/entities"
	"github.com/medicheck/medicheck/internal/domain/services"
)

// ValidateHandler handles fact-check requests.
type ValidateHandler struct {
	validationService *services.ValidationService
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(validationService *services.ValidationService) *ValidateHandler {
	return &ValidateHandler{
		validationService: validationService,
	}
}

// ValidateResult contains the result of a fact-check.
type ValidateResult struct {
	Validation *entities.MedicalValidation
	// Failed is set when the model could not be invoked; Validation then
	// holds the error placeholder.
	Failed bool
}

// HandleContent fact-checks scraped page content.
func (h *ValidateHandler) HandleContent(ctx context.Context, session string, content entities.ContentPayload, instructions string) *ValidateResult {
	v := h.validationService.Validate(ctx, session, content, instructions)
	return &ValidateResult{Validation: v, Failed: v.Failed}
}

// HandleText fact-checks a plain text query. An empty query is rejected
// with services.ErrMalformedRequest.
func (h *ValidateHandler) HandleText(ctx context.Context, session, query, instructions string) (*ValidateResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", services.ErrMalformedRequest)
	}

	v := h.validationService.ValidateText(ctx, session, query, instructions)
	return &ValidateResult{Validation: v, Failed: v.Failed}, nil
}
