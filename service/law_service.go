package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"regexp"
	"sort"
	"strings"

	"legaldash-backend/ai"
	"legaldash-backend/models"
	"legaldash-backend/repository"
)

const (
	// lawBodyPreviewLimit truncates law body text in the rendered fragment.
	lawBodyPreviewLimit = 800

	// suggestionPreviewLimit / suggestionTextLimit bound the audit record.
	suggestionPreviewLimit = 400
	suggestionTextLimit    = 2000

	suggestionReason = "AI law-match"

	// derivedQueryWords is how many top words form the derived query.
	derivedQueryWords = 5
)

// candidateWord matches maximal runs of five or more letters; shorter words
// are too generic to derive a useful query from.
var candidateWord = regexp.MustCompile(`[a-z]{5,}`)

// LawService resolves search queries, runs repository searches and records
// the AI suggestion audit trail.
type LawService struct {
	lawRepo        *repository.LawRepository
	suggestionRepo *repository.SuggestionRepository
	generator      ai.Generator
}

// LawServiceOption is a functional option for LawService.
type LawServiceOption func(*LawService)

// LawWithRepository sets the law repository.
func LawWithRepository(repo *repository.LawRepository) LawServiceOption {
	return func(s *LawService) {
		s.lawRepo = repo
	}
}

// LawWithSuggestionRepository sets the suggestion audit repository.
func LawWithSuggestionRepository(repo *repository.SuggestionRepository) LawServiceOption {
	return func(s *LawService) {
		s.suggestionRepo = repo
	}
}

// LawWithGenerator sets the AI client.
func LawWithGenerator(g ai.Generator) LawServiceOption {
	return func(s *LawService) {
		s.generator = g
	}
}

// NewLawService creates a new law service.
func NewLawService(opts ...LawServiceOption) *LawService {
	s := &LawService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DeriveQuery builds a search query from the dominant vocabulary of the
// document: the five most frequent words of five or more letters, joined by
// spaces. Ties are broken by first occurrence in the document. An empty
// document derives an empty query.
func DeriveQuery(documentText string) string {
	words := candidateWord.FindAllString(strings.ToLower(documentText), -1)
	if len(words) == 0 {
		return ""
	}

	type wordCount struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*wordCount)
	order := make([]*wordCount, 0)
	for i, w := range words {
		if wc, ok := counts[w]; ok {
			wc.count++
			continue
		}
		wc := &wordCount{word: w, count: 1, first: i}
		counts[w] = wc
		order = append(order, wc)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	top := order
	if len(top) > derivedQueryWords {
		top = top[:derivedQueryWords]
	}

	selected := make([]string, len(top))
	for i, wc := range top {
		selected[i] = wc.word
	}
	return strings.Join(selected, " ")
}

// Search resolves the effective query, runs the repository search and, when
// the query was derived from a document excerpt, asks the model for topic
// suggestions and records them in the audit log.
func (s *LawService) Search(ctx context.Context, documentText, query, language, jurisdiction string) (*models.LawSearchResult, error) {
	query = strings.TrimSpace(query)
	explicitQuery := query != ""
	if !explicitQuery && documentText != "" {
		query = DeriveQuery(documentText)
	}

	laws, err := s.lawRepo.Search(ctx, query, strings.TrimSpace(jurisdiction), repository.DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	result := &models.LawSearchResult{
		LawsHTML: renderLaws(laws),
	}

	// Suggestions fire only for the document-driven path: an excerpt was
	// supplied, no explicit query, and the model is reachable.
	if documentText != "" && !explicitQuery && s.generator.Configured() {
		suggestion := s.generator.Generate(ctx, LawTopicSuggestionPrompt(documentText, language))
		result.AISuggestionsJSON = suggestion.Display()
		s.recordSuggestion(ctx, documentText, result.AISuggestionsJSON)
	}

	return result, nil
}

// recordSuggestion appends to the write-only audit log. Failures are logged
// and swallowed; the response is unaffected.
func (s *LawService) recordSuggestion(ctx context.Context, documentText, suggestedText string) {
	if s.suggestionRepo == nil {
		return
	}

	record := &models.Suggestion{
		SourceDocPreview: truncate(documentText, suggestionPreviewLimit),
		SuggestedText:    truncate(suggestedText, suggestionTextLimit),
		Reason:           suggestionReason,
	}
	if err := s.suggestionRepo.Create(ctx, record); err != nil {
		log.Printf("Warning: failed to store suggestion record: %v", err)
	}
}

// renderLaws formats matches as the dashboard's law-list fragment.
func renderLaws(laws []models.Law) string {
	var builder strings.Builder
	builder.WriteString("<h4>Relevant Laws from Database</h4>")

	if len(laws) == 0 {
		builder.WriteString("<p>No matching laws found.</p>")
		return builder.String()
	}

	for _, law := range laws {
		body := law.Text
		ellipsis := ""
		if preview := truncate(body, lawBodyPreviewLimit); preview != body {
			body = preview
			ellipsis = "..."
		}
		builder.WriteString(fmt.Sprintf(
			"<div class='risk-item'><strong>%s</strong><br/><small>%s | tags: %s</small><div>%s%s</div></div>",
			html.EscapeString(law.Title),
			html.EscapeString(law.Jurisdiction),
			html.EscapeString(law.Tags),
			html.EscapeString(body),
			ellipsis,
		))
	}

	return builder.String()
}

// truncate cuts s to at most limit characters, never splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
