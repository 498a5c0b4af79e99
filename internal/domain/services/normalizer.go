package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

// FallbackSummary is returned when the model output is not a usable document.
const FallbackSummary = "The text could not be validated: the model response was not in the expected format."

const codeFence = "```"

// errMissingKey marks a document without a required top-level key.
var errMissingKey = errors.New("missing required key")

// Normalizer turns raw model text into a MedicalValidation. It is tolerant
// at the entry level and fail-soft at the document level: it never returns
// an error.
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer creates a normalizer. A nil logger discards diagnostics.
func NewNormalizer(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger}
}

// Normalize parses raw model output. Malformed entries are dropped and
// reported in Warnings; a malformed document yields a fallback result.
func (n *Normalizer) Normalize(raw string) *entities.MedicalValidation {
	content := StripCodeFence(raw)

	result, err := parseValidation(content)
	if err != nil {
		n.logger.Warn("model response could not be parsed",
			zap.Error(err),
			zap.Int("length", len(raw)),
		)
		return &entities.MedicalValidation{
			Summary:           FallbackSummary,
			ValidationResults: []entities.ValidationResult{},
		}
	}

	for _, w := range result.Warnings {
		n.logger.Warn("dropped validation entry", zap.String("reason", w))
	}
	return result
}

// StripCodeFence trims whitespace and removes a surrounding markdown code
// fence, with or without a language tag.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, codeFence) {
		return content
	}

	content = strings.TrimPrefix(content, codeFence)
	// Language tag, e.g. ```json
	tagEnd := strings.IndexFunc(content, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' || r == '+')
	})
	if tagEnd < 0 {
		tagEnd = len(content)
	}
	content = content[tagEnd:]

	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, codeFence)
	return strings.TrimSpace(content)
}

func parseValidation(content string) (*entities.MedicalValidation, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("parsing validation JSON: %w", err)
	}
	if doc == nil {
		return nil, errors.New("parsing validation JSON: document is null")
	}

	rawSummary, ok := doc["summary"]
	if !ok {
		return nil, fmt.Errorf("%w: summary", errMissingKey)
	}
	var summary string
	if isNull(rawSummary) {
		return nil, errors.New("summary is null")
	}
	if err := json.Unmarshal(rawSummary, &summary); err != nil {
		return nil, fmt.Errorf("summary is not a string: %w", err)
	}

	rawResults, ok := doc["validation_results"]
	if !ok {
		return nil, fmt.Errorf("%w: validation_results", errMissingKey)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(rawResults, &entries); err != nil {
		return nil, fmt.Errorf("validation_results is not an array: %w", err)
	}

	result := &entities.MedicalValidation{
		Summary:           summary,
		ValidationResults: make([]entities.ValidationResult, 0, len(entries)),
	}
	for i, entry := range entries {
		vr, err := parseEntry(entry)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("validation_results[%d]: %v", i, err))
			continue
		}
		result.ValidationResults = append(result.ValidationResults, vr)
	}

	return result, nil
}

func parseEntry(raw json.RawMessage) (entities.ValidationResult, error) {
	if isNull(raw) {
		return entities.ValidationResult{}, errors.New("entry is null")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return entities.ValidationResult{}, errors.New("entry is not an object")
	}

	incorrect, err := stringField(fields, "incorrect_text")
	if err != nil {
		return entities.ValidationResult{}, err
	}
	correct, err := stringField(fields, "correct_text")
	if err != nil {
		return entities.ValidationResult{}, err
	}

	return entities.ValidationResult{
		IncorrectText: incorrect,
		CorrectText:   correct,
	}, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", errMissingKey, key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
		return "", fmt.Errorf("%s is not a string", key)
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
