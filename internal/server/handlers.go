// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/findthatbook/internal/finder"
)

// search handles POST /api/books/search.
func (s *Server) search(c *gin.Context) {
	var req finder.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeProblem(c, http.StatusBadRequest, "Invalid Request", "Request body must be a JSON object with a query.", CodeInvalidRequest, nil)
		return
	}

	s.log.Info("search request", "query", req.Query, "request_id", c.GetString(requestIDKey))
	resp, err := s.finder.Find(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// health handles GET /api/books/health.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
