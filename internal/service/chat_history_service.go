package service

import (
	"context"
	"time"

	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/repository"
	"mindconnect/internal/types"
)

const chatRecordNotFound = "Chat record not found"

type ChatRecordInput struct {
	UserID    types.Optional `json:"userId"`
	SessionID types.Optional `json:"sessionId"`
	Message   types.Optional `json:"message"`
	Response  types.Optional `json:"response"`
	Language  types.Optional `json:"language"`
}

// DeleteTarget selects which chat records to remove. Only the first set
// field counts, in the order ID, SessionID, UserID.
type DeleteTarget struct {
	ID        *uint
	SessionID string
	UserID    *uint
}

type DeleteResult struct {
	Count   int64
	Deleted *models.ChatRecord
}

type ChatHistoryService struct {
	records *repository.ChatRecordRepository
	now     func() time.Time
}

func NewChatHistoryService(records *repository.ChatRecordRepository) *ChatHistoryService {
	return &ChatHistoryService{records: records, now: time.Now}
}

func (s *ChatHistoryService) Record(ctx context.Context, in ChatRecordInput) (*models.ChatRecord, error) {
	sessionID, ok := requiredText(in.SessionID)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingSessionID, "Session ID is required")
	}
	message, ok := requiredText(in.Message)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingMessage, "Message is required and cannot be empty")
	}
	response, ok := requiredText(in.Response)
	if !ok {
		return nil, domain.Validation(domain.CodeMissingResponse, "Response is required and cannot be empty")
	}
	rec := &models.ChatRecord{
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		Language:  domain.DefaultLanguage,
		CreatedAt: stamp(s.now),
	}
	if in.UserID.Present() && !in.UserID.Null() {
		id, err := in.UserID.Uint()
		if err != nil {
			return nil, domain.Validation(domain.CodeInvalidUserID, "Valid user ID is required")
		}
		rec.UserID = &id
	}
	if lang, ok := requiredText(in.Language); ok {
		rec.Language = lang
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, storeErr(err, chatRecordNotFound)
	}
	return rec, nil
}

func (s *ChatHistoryService) Get(ctx context.Context, id uint) (*models.ChatRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, chatRecordNotFound)
	}
	return rec, nil
}

func (s *ChatHistoryService) List(ctx context.Context, f repository.ChatRecordFilter) ([]models.ChatRecord, error) {
	return s.records.List(ctx, f)
}

// Delete removes one record or a whole session or user history. A bulk
// delete that matches nothing is a not-found error.
func (s *ChatHistoryService) Delete(ctx context.Context, t DeleteTarget) (*DeleteResult, error) {
	switch {
	case t.ID != nil:
		rec, err := s.records.DeleteByID(ctx, *t.ID)
		if err != nil {
			return nil, storeErr(err, chatRecordNotFound)
		}
		return &DeleteResult{Count: 1, Deleted: rec}, nil
	case t.SessionID != "":
		n, err := s.records.DeleteBySession(ctx, t.SessionID)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, domain.NotFound(domain.CodeNotFound, "No chat records found for this session")
		}
		return &DeleteResult{Count: n}, nil
	case t.UserID != nil:
		n, err := s.records.DeleteByUser(ctx, *t.UserID)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, domain.NotFound(domain.CodeNotFound, "No chat records found for this user")
		}
		return &DeleteResult{Count: n}, nil
	}
	return nil, domain.Validation(domain.CodeMissingDeleteParameter, "Either id, sessionId, or userId is required")
}
