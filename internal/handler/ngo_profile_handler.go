package handler

import (
	"net/http"

	"mindconnect/internal/domain"
	"mindconnect/internal/repository"
	"mindconnect/internal/service"

	"github.com/gin-gonic/gin"
)

type NGOProfileHandler struct {
	svc *service.NGOProfileService
}

func NewNGOProfileHandler(svc *service.NGOProfileService) *NGOProfileHandler {
	return &NGOProfileHandler{svc: svc}
}

// List handles GET /api/ngo-profiles. With ?id= it returns one profile.
func (h *NGOProfileHandler) List(c *gin.Context) {
	p := params(c)
	if p.Has("id") {
		id, err := p.ID("id", domain.CodeInvalidID, invalidIDMessage)
		if err != nil {
			respondError(c, err)
			return
		}
		profile, err := h.svc.Get(c.Request.Context(), *id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
		return
	}

	userID, err := p.ID("userId", domain.CodeInvalidUserID, "Valid user ID is required")
	if err != nil {
		respondError(c, err)
		return
	}
	approved, err := p.Bool("approved", domain.CodeInvalidApprovedNGO, "Approved must be true or false")
	if err != nil {
		respondError(c, err)
		return
	}
	profiles, err := h.svc.List(c.Request.Context(), repository.NGOProfileFilter{
		UserID:   userID,
		Approved: approved,
		Search:   p.String("search"),
		Page:     p.Page(10),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Create handles POST /api/ngo-profiles.
func (h *NGOProfileHandler) Create(c *gin.Context) {
	var in service.NGOProfileInput
	if !bindJSON(c, &in) {
		return
	}
	profile, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update handles PUT /api/ngo-profiles?id=.
func (h *NGOProfileHandler) Update(c *gin.Context) {
	id, ok := requiredID(c)
	if !ok {
		return
	}
	var in service.NGOProfileInput
	if !bindJSON(c, &in) {
		return
	}
	profile, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/ngo-profiles?id=.
func (h *NGOProfileHandler) Delete(c *gin.Context) {
	id, ok := requiredID(c)
	if !ok {
		return
	}
	profile, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "NGO profile deleted successfully",
		"id":      id,
		"profile": profile,
	})
}
