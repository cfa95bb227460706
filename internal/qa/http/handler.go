package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/domain"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ask(c *gin.Context) {
	logger := service.NewLogger(c.Request.Context())

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.LogWarnf("ask", "invalid body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "question must be a non-empty string"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question must be a non-empty string"})
		return
	}

	res, err := h.askService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, domain.ErrCompletionUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "answer service unavailable",
				"details": err.Error(),
			})
			return
		}
		logger.LogError("ask", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": res.Answer})
}
