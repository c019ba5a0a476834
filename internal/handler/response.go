package handler

import (
	"errors"
	"log"
	"net/http"

	"mindconnect/internal/domain"
	"mindconnect/internal/query"

	"github.com/gin-gonic/gin"
)

const invalidIDMessage = "Valid ID is required"

// respondError writes the {error, code} envelope for err. Anything that is
// not a *domain.Error is logged and reported as a generic server error.
func respondError(c *gin.Context, err error) {
	var e *domain.Error
	if !errors.As(err, &e) || e.Kind == domain.KindInternal {
		log.Printf("[handler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": domain.CodeServerError})
		return
	}
	if e.Err != nil {
		log.Printf("[handler] %s %s: %v", c.Request.Method, c.Request.URL.Path, e)
	}
	c.JSON(statusFor(e.Kind), gin.H{"error": e.Message, "code": e.Code})
}

func statusFor(k domain.Kind) int {
	switch k {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into v, answering 400 INVALID_BODY when
// it is not a JSON object of the expected shape.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, domain.Validation(domain.CodeInvalidBody, "Request body must be valid JSON"))
		return false
	}
	return true
}

// requiredID reads ?id= for PUT and DELETE, where it is mandatory.
func requiredID(c *gin.Context) (uint, bool) {
	id, err := params(c).ID("id", domain.CodeInvalidID, invalidIDMessage)
	if err == nil && id == nil {
		err = domain.Validation(domain.CodeInvalidID, invalidIDMessage)
	}
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	return *id, true
}

func params(c *gin.Context) query.Params {
	return query.FromValues(c.Request.URL.Query())
}
