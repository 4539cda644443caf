// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/findthatbook/internal/catalog"
	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/internal/intent"
)

// Error codes carried in problem responses.
const (
	CodeValidation     = "VALIDATION_FAILED"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeExtraction     = "AI_EXTRACTION_FAILED"
	CodeSearch         = "BOOK_SEARCH_FAILED"
	CodeInternal       = "INTERNAL_ERROR"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 7807 problem document.
type Problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code"`
	Property  string `json:"property,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps err to a status and problem document.
func (s *Server) writeError(c *gin.Context, err error) {
	var ve *finder.ValidationError
	switch {
	case errors.As(err, &ve):
		s.log.Warn("rejected request", "field", ve.Field, "error", ve.Message)
		writeProblem(c, http.StatusBadRequest, "Validation Error", ve.Message, CodeValidation, &ve.Field)
	case errors.Is(err, intent.ErrExtraction):
		s.log.Warn("extraction unavailable", "error", err)
		writeProblem(c, http.StatusServiceUnavailable, "AI Service Unavailable",
			"The AI extraction service is temporarily unavailable. Please try again later.", CodeExtraction, nil)
	case errors.Is(err, catalog.ErrSearch):
		s.log.Warn("catalog unavailable", "error", err)
		writeProblem(c, http.StatusBadGateway, "Book Search Failed",
			"Unable to search for books at this time. Please try again later.", CodeSearch, nil)
	default:
		s.log.Error("unhandled error", "error", err)
		writeProblem(c, http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred. Please try again later.", CodeInternal, nil)
	}
}

func writeProblem(c *gin.Context, status int, title, detail, code string, property *string) {
	p := Problem{
		Type:      "https://findthatbook.api/errors/" + strings.ToLower(code),
		Title:     title,
		Status:    status,
		Detail:    detail,
		ErrorCode: code,
		RequestID: c.GetString(requestIDKey),
	}
	if property != nil {
		p.Property = *property
	}
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(status, p)
}
