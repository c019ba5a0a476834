package handler

import (
	"log"
	"net/http"
	"strings"

	"mindconnect/internal/domain"
	"mindconnect/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var uploadPresets = map[string]cloudinary.Preset{
	"logo":  cloudinary.LogoPreset,
	"event": cloudinary.EventPreset,
}

type UploadHandler struct {
	cloud cloudinary.Client
}

// NewUploadHandler accepts a nil client; uploads then answer 503.
func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadImage handles POST /api/uploads/image with multipart fields file and
// kind (logo or event). The returned URL goes into logoUrl or imageUrl.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured", "code": domain.CodeUploadsDisabled})
		return
	}
	kind := strings.ToLower(strings.TrimSpace(c.PostForm("kind")))
	preset, ok := uploadPresets[kind]
	if !ok {
		respondError(c, domain.Validation(domain.CodeInvalidKind, "kind must be logo or event"))
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, domain.Validation(domain.CodeMissingFile, "file is required"))
		return
	}
	f, err := file.Open()
	if err != nil {
		respondError(c, domain.Validation(domain.CodeMissingFile, "could not read file"))
		return
	}
	defer f.Close()

	publicID := kind + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	up, err := h.cloud.UploadImage(c.Request.Context(), f, preset, publicID)
	if err != nil {
		log.Printf("[upload] %s: %v", publicID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed", "code": domain.CodeUploadFailed})
		return
	}
	c.JSON(http.StatusCreated, up)
}
