package handlers

import (
	"net/http"

	"contractwise-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles HTTP requests for contract documents
type ContractHandler struct {
	ingestService *service.IngestService
	documents     service.DocumentStore
}

// NewContractHandler creates a new contract handler
func NewContractHandler(ingestService *service.IngestService, documents service.DocumentStore) *ContractHandler {
	return &ContractHandler{
		ingestService: ingestService,
		documents:     documents,
	}
}

// UploadContractRequest represents the request body for uploading a contract
type UploadContractRequest struct {
	Filename   string  `json:"filename" binding:"required"`
	ExpiryDate *string `json:"expiry_date"`
	Status     string  `json:"status"`
	RiskScore  string  `json:"risk_score"`
	Content    string  `json:"content"`
}

// Upload handles POST /contracts/upload
func (h *ContractHandler) Upload(c *gin.Context) {
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

	var req UploadContractRequest
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

	result, err := h.ingestService.Ingest(c.Request.Context(), userID, service.UploadRequest{
		Filename:   req.Filename,
		ExpiryDate: req.ExpiryDate,
		Status:     req.Status,
		RiskScore:  req.RiskScore,
		Content:    req.Content,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INGESTION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Contract uploaded & parsed",
		"document": result.Document,
		"chunks":   result.Chunks,
	})
}

// List handles GET /contracts/
func (h *ContractHandler) List(c *gin.Context) {
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

	docs, err := h.documents.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Get handles GET /contracts/:doc_id
func (h *ContractHandler) Get(c *gin.Context) {
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

	docID, err := uuid.Parse(c.Param("doc_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documents.GetByID(c.Request.Context(), docID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "GET_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Contract not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}
