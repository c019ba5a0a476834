package handler

import (
	"net/http"
	"time"

	"mindconnect/internal/domain"
	"mindconnect/internal/repository"
	"mindconnect/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
	now func() time.Time
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc, now: time.Now}
}

// List handles GET /api/events. upcoming=true keeps events dated from now on.
func (h *EventHandler) List(c *gin.Context) {
	p := params(c)
	if p.Has("id") {
		id, err := p.ID("id", domain.CodeInvalidID, invalidIDMessage)
		if err != nil {
			respondError(c, err)
			return
		}
		event, err := h.svc.Get(c.Request.Context(), *id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
		return
	}

	ngoID, err := p.ID("ngoId", domain.CodeInvalidNGOID, "Valid NGO ID is required")
	if err != nil {
		respondError(c, err)
		return
	}
	approved, err := p.Bool("approved", domain.CodeInvalidApprovedEvt, "Approved must be true or false")
	if err != nil {
		respondError(c, err)
		return
	}
	f := repository.EventFilter{
		NGOID:    ngoID,
		Approved: approved,
		Category: p.String("category"),
		Search:   p.String("search"),
		Page:     p.Page(10),
	}
	if p.Flag("upcoming") {
		from := h.now().UTC()
		f.From = &from
	}
	events, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(c *gin.Context) {
	var in service.EventInput
	if !bindJSON(c, &in) {
		return
	}
	event, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update handles PUT /api/events?id=.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := requiredID(c)
	if !ok {
		return
	}
	var in service.EventInput
	if !bindJSON(c, &in) {
		return
	}
	event, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events?id=.
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := requiredID(c)
	if !ok {
		return
	}
	event, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"id":      id,
		"event":   event,
	})
}
