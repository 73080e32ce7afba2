package handlers

import (
	"errors"
	"io"
	"net/http"

	"legaldash-backend/extract"
	"legaldash-backend/models"
	"legaldash-backend/report"
	"legaldash-backend/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps analyzed documents at 10MB.
const maxUploadSize = 10 * 1024 * 1024

// AnalysisHandler handles HTTP requests for the analysis pipeline.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	DocumentText string `json:"document_text"`
	Question     string `json:"question"`
	Language     string `json:"language"`
}

// NegotiateRequest is the body of POST /negotiate.
type NegotiateRequest struct {
	History     []models.NegotiationTurn `json:"history"`
	UserMessage string                   `json:"user_message"`
}

// CompareRequest is the body of POST /compare_clauses.
type CompareRequest struct {
	ClauseA  string `json:"clause_a"`
	ClauseB  string `json:"clause_b"`
	Language string `json:"language"`
}

// ReportRequest is the body of POST /download_report.
type ReportRequest struct {
	KeyFacts       string `json:"key_facts"`
	RiskAnalysis   string `json:"risk_analysis"`
	FilledDocument string `json:"filled_document"`
}

// Analyze handles POST /analyze.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": "File size exceeds maximum of 10MB",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_READ_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.analysisService.Analyze(
		c.Request.Context(),
		fileHeader.Filename,
		data,
		c.PostForm("user_name"),
		c.PostForm("language"),
	)
	if err != nil {
		status := http.StatusInternalServerError
		code := "EXTRACTION_FAILED"
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
			code = "UNSUPPORTED_FORMAT"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompareClauses handles POST /compare_clauses.
func (h *AnalysisHandler) CompareClauses(c *gin.Context) {
	var req CompareRequest
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

	comparison := h.analysisService.CompareClauses(c.Request.Context(), req.ClauseA, req.ClauseB, req.Language)
	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

// Ask handles POST /ask.
func (h *AnalysisHandler) Ask(c *gin.Context) {
	var req AskRequest
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

	answer := h.analysisService.Ask(c.Request.Context(), req.DocumentText, req.Question, req.Language)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// Negotiate handles POST /negotiate.
func (h *AnalysisHandler) Negotiate(c *gin.Context) {
	var req NegotiateRequest
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

	reply, history := h.analysisService.Negotiate(c.Request.Context(), req.History, req.UserMessage)
	c.JSON(http.StatusOK, gin.H{
		"ai_response":     reply,
		"updated_history": history,
	})
}

// DownloadReport handles POST /download_report.
func (h *AnalysisHandler) DownloadReport(c *gin.Context) {
	var req ReportRequest
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

	pdfBytes, err := report.Render(report.Fields{
		KeyFacts:       req.KeyFacts,
		RiskAnalysis:   req.RiskAnalysis,
		FilledDocument: req.FilledDocument,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "REPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=Legal_AI_Report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
