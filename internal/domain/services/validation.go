package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/domain/entities"
	"github.com/medicheck/medicheck/internal/domain/ports"
)

// ValidationOptions controls prompt construction for fact-check requests.
type ValidationOptions struct {
	// MaxTextLength caps the page text embedded in the prompt.
	MaxTextLength int
	// DefaultInstructions replaces the built-in instructions when a request
	// carries none.
	DefaultInstructions string
}

// ValidationService fact-checks page content and free text.
type ValidationService struct {
	llm        ports.LLMClient
	tools      ports.ToolBank
	history    ports.ConversationStore
	normalizer *Normalizer
	opts       ValidationOptions
	logger     *zap.Logger
}

// NewValidationService creates a new validation service.
func NewValidationService(llm ports.LLMClient, tools ports.ToolBank, history ports.ConversationStore, opts ValidationOptions, logger *zap.Logger) *ValidationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxTextLength <= 0 {
		opts.MaxTextLength = entities.MaxTextLength
	}
	return &ValidationService{
		llm:        llm,
		tools:      tools,
		history:    history,
		normalizer: NewNormalizer(logger),
		opts:       opts,
		logger:     logger,
	}
}

// Validate fact-checks scraped page content. It never returns an error:
// a failed model call yields an error placeholder with Failed set.
func (s *ValidationService) Validate(ctx context.Context, session string, content entities.ContentPayload, instructions string) *entities.MedicalValidation {
	query := content.Format(s.opts.MaxTextLength)
	result := s.run(ctx, query, content.SearchTerm(), instructions)

	s.record(session, "Fact-check request: "+content.Label(), result)
	return result
}

// ValidateText fact-checks a plain text query.
func (s *ValidationService) ValidateText(ctx context.Context, session string, text string, instructions string) *entities.MedicalValidation {
	query := entities.TruncateText(text, s.opts.MaxTextLength)
	result := s.run(ctx, query, entities.TruncateText(strings.TrimSpace(text), 200), instructions)

	s.record(session, "Fact-check request: "+entities.TruncateText(text, 200), result)
	return result
}

func (s *ValidationService) run(ctx context.Context, query, searchTerm, instructions string) *entities.MedicalValidation {
	if strings.TrimSpace(instructions) == "" {
		instructions = s.opts.DefaultInstructions
	}

	var outputs []ports.ToolOutput
	if s.tools != nil {
		outputs = s.tools.RunAll(searchTerm)
	}
	prompt := ComposeValidationPrompt(query, instructions, outputs)

	s.logger.Debug("sending validation prompt",
		zap.String("provider", s.llm.Name()),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("tools", len(outputs)),
	)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvocation, err)
		s.logger.Error("validation call failed", zap.Error(err))
		return entities.NewErrorValidation(err)
	}

	return s.normalizer.Normalize(raw)
}

// record appends the request and its outcome to the session history.
func (s *ValidationService) record(session, request string, result *entities.MedicalValidation) {
	if s.history == nil {
		return
	}
	entries := []entities.ConversationEntry{
		{Role: entities.RoleUser, Message: request},
		{Role: entities.RoleValidation, Message: describeValidation(result)},
	}
	for _, e := range entries {
		if err := s.history.Append(session, e); err != nil {
			s.logger.Warn("history append failed", zap.String("session", session), zap.Error(err))
		}
	}
}

// describeValidation condenses a result into a single history message.
func describeValidation(v *entities.MedicalValidation) string {
	var b strings.Builder
	b.WriteString(v.Summary)
	for _, r := range v.ValidationResults {
		b.WriteString("\n- ")
		b.WriteString(r.IncorrectText)
		b.WriteString(" -> ")
		b.WriteString(r.CorrectText)
	}
	return b.String()
}
