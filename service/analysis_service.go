package service

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync"

	"legaldash-backend/ai"
	"legaldash-backend/extract"
	"legaldash-backend/models"
	"legaldash-backend/storage"

	"github.com/google/uuid"
)

const (
	// namePlaceholder is the literal token auto-filled with the user's name.
	namePlaceholder = "[Your Name]"

	// unfilledMarker replaces the placeholder when no name was given, so the
	// user can see the document still has blanks.
	unfilledMarker = "[[Your Name]]"

	negotiationUnavailable = "AI negotiation is unavailable."
	negotiationTrigger     = "Start now."
	negotiationContinue    = "Continue negotiation."
)

// AnalysisService orchestrates the document analysis pipeline: text
// extraction, placeholder auto-fill, the three-way prompt fan-out and the
// negotiation opener.
type AnalysisService struct {
	generator ai.Generator
	archive   storage.Archive
}

// AnalysisServiceOption is a functional option for AnalysisService.
type AnalysisServiceOption func(*AnalysisService)

// WithGenerator sets the AI client.
func WithGenerator(g ai.Generator) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.generator = g
	}
}

// WithArchive sets the upload archive. Optional; when unset, uploads are not
// archived.
func WithArchive(a storage.Archive) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.archive = a
	}
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze turns an uploaded file into the full dashboard payload. Extraction
// failure is the only hard failure path; every AI-derived field degrades to
// displayable text when the model is unavailable.
func (s *AnalysisService) Analyze(ctx context.Context, filename string, data []byte, userName, language string) (*models.AnalysisResult, error) {
	docText, err := extract.Text(filename, data)
	if err != nil {
		return nil, err
	}

	fillWith := userName
	if fillWith == "" {
		fillWith = unfilledMarker
	}
	filled := strings.ReplaceAll(docText, namePlaceholder, fillWith)

	// The three analyses are independent; dispatch them together and wait
	// for all of them. No partial results.
	var (
		keyFacts, riskAnalysis, lifespan ai.Result
		wg                               sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		keyFacts = s.generator.Generate(ctx, KeyFactsPrompt(filled, language))
	}()
	go func() {
		defer wg.Done()
		riskAnalysis = s.generator.Generate(ctx, RiskAnalysisPrompt(filled, language))
	}()
	go func() {
		defer wg.Done()
		lifespan = s.generator.Generate(ctx, TimelinePrompt(filled, language))
	}()
	wg.Wait()

	start, history := s.openNegotiation(ctx, filled, language)

	s.archiveUpload(ctx, filename, data)

	return &models.AnalysisResult{
		KeyFacts:           keyFacts.Display(),
		RiskAnalysis:       riskAnalysis.Display(),
		Lifespan:           lifespan.Display(),
		OriginalDocument:   docText,
		FilledDocument:     filled,
		NegotiationStart:   start,
		NegotiationHistory: history,
	}, nil
}

// openNegotiation seeds the simulator with one scripted user turn and
// captures the model's opening reply. With no credential the history stays at
// the scripted turn and the reply is a fixed unavailable message.
func (s *AnalysisService) openNegotiation(ctx context.Context, filledDoc, language string) (string, []models.NegotiationTurn) {
	history := []models.NegotiationTurn{
		models.NewTurn(models.RoleUser, NegotiationOpenPrompt(filledDoc, language)),
	}

	if !s.generator.Configured() {
		return negotiationUnavailable, history
	}

	result, history := s.generator.Chat(ctx, history, negotiationTrigger)
	return result.Display(), history
}

// archiveUpload copies the analyzed document into the archive store.
// Archiving is best effort and never affects the response.
func (s *AnalysisService) archiveUpload(ctx context.Context, filename string, data []byte) {
	if s.archive == nil {
		return
	}
	if _, err := s.archive.Store(ctx, uuid.New(), filename, bytes.NewReader(data)); err != nil {
		log.Printf("Warning: failed to archive upload %s: %v", filename, err)
	}
}

// CompareClauses asks the model for an HTML diff of two clause texts.
func (s *AnalysisService) CompareClauses(ctx context.Context, clauseA, clauseB, language string) string {
	return s.generator.Generate(ctx, ClauseDiffPrompt(clauseA, clauseB, language)).Display()
}

// Ask answers a free-form question about the document.
func (s *AnalysisService) Ask(ctx context.Context, documentText, question, language string) string {
	return s.generator.Generate(ctx, QuestionPrompt(documentText, question, language)).Display()
}

// Negotiate advances the caller-owned negotiation by one round: the user's
// message is appended, the model replies, and the updated history goes back
// to the caller. On model failure the history keeps the user turn so the
// exchange is not silently lost.
func (s *AnalysisService) Negotiate(ctx context.Context, history []models.NegotiationTurn, userMessage string) (string, []models.NegotiationTurn) {
	if history == nil {
		history = []models.NegotiationTurn{}
	}
	history = append(history, models.NewTurn(models.RoleUser, userMessage))

	result, history := s.generator.Chat(ctx, history, negotiationContinue)
	return result.Display(), history
}
