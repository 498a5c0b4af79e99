package handlers

import (
	"context"
	"fmt"

	"github.com/medicheck/medicheck/internal/domain/entities"
	"github.com/medicheck/medicheck/internal/domain/services"
)

// ChatHandler handles conversational turns.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatResult contains the reply to a chat message.
type ChatResult struct {
	Response string
}

// Handle answers a chat message in the given session.
func (h *ChatHandler) Handle(ctx context.Context, session, message string) (*ChatResult, error) {
	reply, err := h.chatService.Reply(ctx, session, message)
	if err != nil {
		return nil, fmt.Errorf("replying to chat message: %w", err)
	}

	return &ChatResult{Response: reply}, nil
}

// History returns the session history.
func (h *ChatHandler) History(session string) []entities.ConversationEntry {
	return h.chatService.History(session)
}

// Reset clears the session history.
func (h *ChatHandler) Reset(session string) {
	h.chatService.Reset(session)
}
