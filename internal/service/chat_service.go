package service

import (
	"context"
	"log"

	"mindconnect/internal/chatbot"
	"mindconnect/internal/domain"
	"mindconnect/internal/types"
	"mindconnect/pkg/completion"
)

// ChatRequest fields are all optional on the wire; a language or sessionId
// that is not a string is treated as absent.
type ChatRequest struct {
	Message   types.Optional `json:"message"`
	Language  types.Optional `json:"language"`
	SessionID types.Optional `json:"sessionId"`
	UserID    types.Optional `json:"userId"`
}

type ChatReply struct {
	Response string `json:"response"`
}

// ChatService answers chat turns. A nil provider means every reply comes
// from the local fallback table.
type ChatService struct {
	provider completion.Provider
	history  *ChatHistoryService
}

func NewChatService(provider completion.Provider, history *ChatHistoryService) *ChatService {
	return &ChatService{provider: provider, history: history}
}

// Reply never fails once the message is valid: provider errors fall back to
// a canned reply, and history failures are only logged.
func (s *ChatService) Reply(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	message, ok := requiredText(req.Message)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingMessage, "Message is required")
	}
	language, ok := requiredText(req.Language)
	if !ok {
		language = domain.DefaultLanguage
	}

	response := s.generate(ctx, message, language)

	if sid, ok := requiredText(req.SessionID); ok && s.history != nil {
		_, err := s.history.Record(ctx, ChatRecordInput{
			UserID:    req.UserID,
			SessionID: types.Of(sid),
			Message:   types.Of(message),
			Response:  types.Of(response),
			Language:  types.Of(language),
		})
		if err != nil {
			log.Printf("[chat] save history for session %s: %v", sid, err)
		}
	}
	return &ChatReply{Response: response}, nil
}

func (s *ChatService) generate(ctx context.Context, message, language string) string {
	if s.provider != nil {
		text, err := s.provider.Complete(ctx, chatbot.SystemPrompt(language), message)
		if err == nil {
			return text
		}
		log.Printf("[chat] provider failed, using fallback: %v", err)
	}
	reply, _ := chatbot.Fallback(message)
	return reply
}
