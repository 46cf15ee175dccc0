package handlers

import (
	"errors"
	"net/http"

	"contractwise-backend/service"

	"github.com/gin-gonic/gin"
)

// QueryHandler handles HTTP requests for natural-language questions
type QueryHandler struct {
	retrievalService *service.RetrievalService
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(retrievalService *service.RetrievalService) *QueryHandler {
	return &QueryHandler{retrievalService: retrievalService}
}

// AskRequest represents the request body for a question
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask handles POST /ask/
func (h *QueryHandler) Ask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Missing authenticated user",
			},
		})
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.retrievalService.Answer(c.Request.Context(), userID, req.Question)
	if err != nil {
		if errors.Is(err, service.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NO_DOCUMENTS",
					"message": "No documents found for this user",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "QUERY_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
