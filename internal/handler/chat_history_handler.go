package handler

import (
	"net/http"

	"mindconnect/internal/domain"
	"mindconnect/internal/repository"
	"mindconnect/internal/service"

	"github.com/gin-gonic/gin"
)

const chatHistoryDeleted = "Chat history deleted successfully"

type ChatHistoryHandler struct {
	svc *service.ChatHistoryService
}

func NewChatHistoryHandler(svc *service.ChatHistoryService) *ChatHistoryHandler {
	return &ChatHistoryHandler{svc: svc}
}

// List handles GET /api/chat-history.
func (h *ChatHistoryHandler) List(c *gin.Context) {
	p := params(c)
	if p.Has("id") {
		id, err := p.ID("id", domain.CodeInvalidID, invalidIDMessage)
		if err != nil {
			respondError(c, err)
			return
		}
		rec, err := h.svc.Get(c.Request.Context(), *id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
		return
	}

	userID, err := p.ID("userId", domain.CodeInvalidUserID, "Valid user ID is required")
	if err != nil {
		respondError(c, err)
		return
	}
	records, err := h.svc.List(c.Request.Context(), repository.ChatRecordFilter{
		UserID:    userID,
		SessionID: p.String("sessionId"),
		Search:    p.String("search"),
		Page:      p.Page(20),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Create handles POST /api/chat-history.
func (h *ChatHistoryHandler) Create(c *gin.Context) {
	var in service.ChatRecordInput
	if !bindJSON(c, &in) {
		return
	}
	rec, err := h.svc.Record(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Delete handles DELETE /api/chat-history by id, sessionId or userId, in
// that order of precedence.
func (h *ChatHistoryHandler) Delete(c *gin.Context) {
	p := params(c)
	var (
		target service.DeleteTarget
		err    error
	)
	switch {
	case p.Has("id"):
		target.ID, err = p.ID("id", domain.CodeInvalidID, invalidIDMessage)
	case p.Has("sessionId"):
		target.SessionID = p.String("sessionId")
	case p.Has("userId"):
		target.UserID, err = p.ID("userId", domain.CodeInvalidUserID, "Valid user ID is required")
	}
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.svc.Delete(c.Request.Context(), target)
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Deleted != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":      chatHistoryDeleted,
			"deletedCount": res.Count,
			"deleted":      res.Deleted,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": chatHistoryDeleted, "deletedCount": res.Count})
}
