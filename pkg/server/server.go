// Package server exposes chatbot exchanges over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhyannv/medchat-go/pkg/chatbot"
	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
)

const (
	// ChatbotPath is the route that accepts one chat message per request.
	ChatbotPath = "/api/chatbot"

	fallbackReply      = "Sorry, I could not generate a response."
	notConfiguredMsg   = "Chatbot is not configured. Missing OpenRouter API key."
	messageRequiredMsg = "Message is required."
	maxBodyBytes       = 1 << 20
)

// Exchanger runs one stateless chat exchange.
type Exchanger interface {
	Exchange(ctx context.Context, input string) chatbot.Exchange
}

// Server provides the chatbot HTTP handlers.
type Server struct {
	bot    Exchanger
	logger loggerpkg.Logger
}

// New creates a server. A nil bot makes every chat request fail with 500,
// so the process can start before a credential is configured.
func New(bot Exchanger, logger loggerpkg.Logger) *Server {
	if logger == nil {
		logger = loggerpkg.NopLogger{}
	}
	return &Server{bot: bot, logger: logger}
}

// Routes returns the router for the chatbot API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ChatbotPath, s.handleChat)
	return mux
}

type chatRequest struct {
	Message json.RawMessage `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.bot == nil {
		loggerpkg.Error(s.logger, "chat request rejected", map[string]any{"reason": "missing api key"})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: notConfiguredMsg})
		return
	}

	message, ok := decodeMessage(w, r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: messageRequiredMsg})
		return
	}

	ex := s.bot.Exchange(r.Context(), message)
	switch {
	case errors.Is(ex.Err, chatbot.ErrEmptyChoices), errors.Is(ex.Err, chatbot.ErrMissingContent):
		writeJSON(w, http.StatusOK, chatResponse{Reply: fallbackReply})
	case ex.Err != nil:
		loggerpkg.Error(s.logger, "chat exchange failed", map[string]any{"error": ex.Err.Error()})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: ex.Err.Error()})
	case ex.Reply == "":
		writeJSON(w, http.StatusOK, chatResponse{Reply: fallbackReply})
	default:
		writeJSON(w, http.StatusOK, chatResponse{Reply: ex.Reply})
	}
}

// decodeMessage accepts only a non-empty JSON string in the message field.
func decodeMessage(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return "", false
	}
	var message string
	if err := json.Unmarshal(req.Message, &message); err != nil {
		return "", false
	}
	return message, message != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
