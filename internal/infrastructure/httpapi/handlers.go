package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/medicheck/medicheck/internal/domain/entities"
	"github.com/medicheck/medicheck/internal/domain/services"
)

type summarizeRequest struct {
	Content            entities.ContentPayload `json:"content"`
	CustomInstructions string                  `json:"custom_instructions"`
}

type validateRequest struct {
	Query              string `json:"query"`
	CustomInstructions string `json:"custom_instructions"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type historyResponse struct {
	SessionID string                       `json:"session_id"`
	History   []entities.ConversationEntry `json:"history"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if !s.decode(w, r, &req) {
		return
	}
	session := SessionFromContext(r.Context())
	s.logger.Debug("summarize request",
		zap.String("session", session),
		zap.String("title", req.Content.Title),
		zap.String("url", req.Content.URL),
		zap.Int("text_length", len(req.Content.Text)),
	)

	result := s.validate.HandleContent(r.Context(), session, req.Content, req.CustomInstructions)
	s.respondJSON(w, s.validationStatus(result.Failed), result.Validation)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !s.decode(w, r, &req) {
		return
	}
	session := SessionFromContext(r.Context())

	result, err := s.validate.HandleText(r.Context(), session, req.Query, req.CustomInstructions)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	s.respondJSON(w, s.validationStatus(result.Failed), result.Validation)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !s.decode(w, r, &req) {
		return
	}
	session := SessionFromContext(r.Context())

	result, err := s.chat.Handle(r.Context(), session, req.Message)
	switch {
	case errors.Is(err, services.ErrMalformedRequest):
		s.respondError(w, http.StatusBadRequest, "message is required")
	case errors.Is(err, services.ErrInvocation):
		s.respondError(w, http.StatusBadGateway, err.Error())
	case err != nil:
		s.logger.Error("chat failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	default:
		s.respondJSON(w, http.StatusOK, chatResponse{Response: result.Response})
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	history := s.chat.History(session)
	if history == nil {
		history = []entities.ConversationEntry{}
	}
	s.respondJSON(w, http.StatusOK, historyResponse{SessionID: session, History: history})
}

func (s *Server) handleResetHistory(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())
	s.chat.Reset(session)
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// validationStatus picks the status for a fact-check result.
func (s *Server) validationStatus(failed bool) int {
	if failed && !s.config.SoftErrors {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

// decode reads a JSON body into v, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		s.logger.Debug("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
