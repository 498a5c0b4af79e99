package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/domain/entities"
	"github.com/medicheck/medicheck/internal/domain/ports"
)

// replyLabels are leading labels some models put in front of a reply.
var replyLabels = []string{"Response:", "Assistant:"}

// ChatService answers conversational messages using the session history.
type ChatService struct {
	llm     ports.LLMClient
	history ports.ConversationStore
	logger  *zap.Logger
}

// NewChatService creates a new chat service.
func NewChatService(llm ports.LLMClient, history ports.ConversationStore, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		llm:     llm,
		history: history,
		logger:  logger,
	}
}

// Reply appends the message to the session, asks the model with the session
// history as context and records the answer. An empty message returns
// ErrMalformedRequest without touching the history.
func (s *ChatService) Reply(ctx context.Context, session, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", ErrMalformedRequest)
	}

	if err := s.history.Append(session, entities.ConversationEntry{Role: entities.RoleUser, Message: message}); err != nil {
		return "", fmt.Errorf("recording message: %w", err)
	}
	prompt := ComposeChatPrompt(message, s.history.ContextString(session))

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("chat call failed", zap.String("session", session), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvocation, err)
	}

	reply := StripReplyLabel(raw)
	if err := s.history.Append(session, entities.ConversationEntry{Role: entities.RoleBot, Message: reply}); err != nil {
		s.logger.Warn("history append failed", zap.String("session", session), zap.Error(err))
	}
	return reply, nil
}

// History returns the session history.
func (s *ChatService) History(session string) []entities.ConversationEntry {
	return s.history.Snapshot(session)
}

// Reset clears the session history.
func (s *ChatService) Reset(session string) {
	s.history.Reset(session)
}

// StripReplyLabel trims whitespace and a leading label such as "Response:".
func StripReplyLabel(reply string) string {
	reply = strings.TrimSpace(reply)
	for _, label := range replyLabels {
		if len(reply) >= len(label) && strings.EqualFold(reply[:len(label)], label) {
			return strings.TrimSpace(reply[len(label):])
		}
	}
	return reply
}
