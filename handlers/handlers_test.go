package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"legaldash-backend/ai"
	"legaldash-backend/models"
	"legaldash-backend/repository"
	"legaldash-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator answers every prompt with a canned reply so handler tests
// never reach the network.
type fakeGenerator struct {
	mu         sync.Mutex
	configured bool
	reply      string
	prompts    int
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) ai.Result {
	f.mu.Lock()
	f.prompts++
	f.mu.Unlock()

	if !f.configured {
		return ai.Degraded("AI API key not configured.")
	}
	return ai.Ok(f.reply)
}

func (f *fakeGenerator) Chat(ctx context.Context, history []models.NegotiationTurn, message string) (ai.Result, []models.NegotiationTurn) {
	if !f.configured {
		return ai.Degraded("AI API key not configured."), history
	}
	return ai.Ok(f.reply), append(history, models.NewTurn(models.RoleModel, f.reply))
}

func (f *fakeGenerator) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts
}

func newTestRouter(t *testing.T, gen *fakeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	lawRepo := repository.NewLawRepository(db)
	require.NoError(t, lawRepo.Create(context.Background(), &models.Law{
		Title: "Rent Control Act", Jurisdiction: "Chennai", Tags: "rent", Text: "Caps annual rent increases.",
	}))
	require.NoError(t, lawRepo.Create(context.Background(), &models.Law{
		Title: "Mumbai Rent Act", Jurisdiction: "Mumbai", Tags: "rent", Text: "Mumbai rent rules.",
	}))

	analysisHandler := NewAnalysisHandler(service.NewAnalysisService(service.WithGenerator(gen)))
	lawHandler := NewLawHandler(service.NewLawService(
		service.LawWithRepository(lawRepo),
		service.LawWithSuggestionRepository(repository.NewSuggestionRepository(db)),
		service.LawWithGenerator(gen),
	))

	router := gin.New()
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/laws_search", lawHandler.LawsSearch)
	router.POST("/compare_clauses", analysisHandler.CompareClauses)
	router.POST("/download_report", analysisHandler.DownloadReport)
	router.POST("/ask", analysisHandler.Ask)
	router.POST("/negotiate", analysisHandler.Negotiate)
	return router
}

func uploadRequest(t *testing.T, filename, content, userName string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, mw.WriteField("user_name", userName))
	require.NoError(t, mw.WriteField("language", "en"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, path string, payload interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAnalyze_TxtUpload(t *testing.T) {
	gen := &fakeGenerator{configured: true, reply: "<p>analysis</p>"}
	router := newTestRouter(t, gen)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "lease.txt", "Agreement for [Your Name], rent Rs. 15000.", "Priya"))

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "<p>analysis</p>", result.KeyFacts)
	assert.Equal(t, "<p>analysis</p>", result.RiskAnalysis)
	assert.Equal(t, "<p>analysis</p>", result.Lifespan)
	assert.Contains(t, result.FilledDocument, "Priya")
	assert.Contains(t, result.OriginalDocument, "[Your Name]")
	assert.Len(t, result.NegotiationHistory, 2)
}

func TestAnalyze_MissingFile(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(""))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FILE")
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	gen := &fakeGenerator{configured: true, reply: "ok"}
	router := newTestRouter(t, gen)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "doc.rtf", "{\\rtf1 hello}", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_FORMAT")
	// Rejected uploads never reach the model.
	assert.Equal(t, 0, gen.promptCount())
}

func TestAnalyze_CorruptPdf(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true, reply: "ok"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "broken.pdf", "not a pdf", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "EXTRACTION_FAILED")
}

func TestLawsSearch(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/laws_search", gin.H{"q": "rent"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		LawsHTML          string `json:"laws_html"`
		AISuggestionsJSON string `json:"ai_suggestions_json"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.LawsHTML, "Rent Control Act")
	// The absent jurisdiction defaults to Chennai, filtering out other states.
	assert.NotContains(t, resp.LawsHTML, "Mumbai Rent Act")
	assert.Empty(t, resp.AISuggestionsJSON)
}

func TestLawsSearch_ExplicitJurisdiction(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/laws_search", gin.H{"q": "rent", "jurisdiction": "Mumbai"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mumbai Rent Act")
	assert.NotContains(t, rec.Body.String(), "Rent Control Act")
}

func TestNegotiate_RoundTrip(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true, reply: "No, $450 final."})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/negotiate", NegotiateRequest{
		History: []models.NegotiationTurn{
			models.NewTurn(models.RoleUser, "opening"),
			models.NewTurn(models.RoleModel, "counter"),
		},
		UserMessage: "I propose $500",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AIResponse     string                   `json:"ai_response"`
		UpdatedHistory []models.NegotiationTurn `json:"updated_history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No, $450 final.", resp.AIResponse)
	require.Len(t, resp.UpdatedHistory, 4)
	assert.Equal(t, "I propose $500", resp.UpdatedHistory[2].Message())
	assert.Equal(t, models.RoleModel, resp.UpdatedHistory[3].Role)
}

func TestAsk(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true, reply: "It expires in June."})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/ask", AskRequest{
		DocumentText: "lease text", Question: "When does it expire?", Language: "en",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "It expires in June.")
}

func TestCompareClauses(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true, reply: "<ul><li>diff</li></ul>"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/compare_clauses", CompareRequest{
		ClauseA: "clause a", ClauseB: "clause b", Language: "en",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Comparison string `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "<ul><li>diff</li></ul>", resp.Comparison)
}

func TestDownloadReport(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, "/download_report", ReportRequest{
		KeyFacts:       "<li>Rent Rs. 15000</li>",
		RiskAnalysis:   "<div>No exit clause.</div>",
		FilledDocument: "Agreement text.",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Legal_AI_Report.pdf", rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestInvalidJSONBody(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{configured: true})

	for _, path := range []string{"/laws_search", "/compare_clauses", "/ask", "/negotiate", "/download_report"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "INVALID_BODY", "path %s", path)
	}
}
