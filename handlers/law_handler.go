package handlers

import (
	"net/http"

	"legaldash-backend/service"

	"github.com/gin-gonic/gin"
)

// LawHandler handles HTTP requests for law search.
type LawHandler struct {
	lawService *service.LawService
}

// NewLawHandler creates a new law handler.
func NewLawHandler(lawService *service.LawService) *LawHandler {
	return &LawHandler{lawService: lawService}
}

// LawSearchRequest is the body of POST /laws_search. All fields are
// optional; with neither a query nor a document excerpt, the newest laws for
// the jurisdiction are returned. Absent jurisdiction and language default to
// Chennai and en, matching the dashboard wire contract.
type LawSearchRequest struct {
	DocumentText string `json:"document_text"`
	Q            string `json:"q"`
	Language     string `json:"language"`
	Jurisdiction string `json:"jurisdiction"`
}

// LawsSearch handles POST /laws_search.
func (h *LawHandler) LawsSearch(c *gin.Context) {
	var req LawSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_BODY",
				"message": err.Error(),
			},
		})
		return
	}

	if req.Jurisdiction == "" {
		req.Jurisdiction = "Chennai"
	}
	if req.Language == "" {
		req.Language = "en"
	}

	result, err := h.lawService.Search(c.Request.Context(), req.DocumentText, req.Q, req.Language, req.Jurisdiction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SEARCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"laws_html":           result.LawsHTML,
		"ai_suggestions_json": result.AISuggestionsJSON,
	})
}
