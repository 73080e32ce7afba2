package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestKeyFactsPrompt(t *testing.T) {
	prompt := KeyFactsPrompt("The rent is Rs. 15000 per month.", "Tamil")
	assert.Contains(t, prompt, "Respond in Tamil.")
	assert.Contains(t, prompt, "The rent is Rs. 15000 per month.")
}

func TestKeyFactsPrompt_DefaultLanguage(t *testing.T) {
	prompt := KeyFactsPrompt("doc", "")
	assert.Contains(t, prompt, "Respond in English.")
}

func TestRiskAnalysisPrompt_SeverityMarkup(t *testing.T) {
	prompt := RiskAnalysisPrompt("doc body", "English")

	// Exactly the two severities with their prescribed markup, so the
	// dashboard can style findings without re-parsing free text.
	assert.Contains(t, prompt, "<div class='risk-item risk-high'><strong>High Risk:</strong>")
	assert.Contains(t, prompt, "<div class='risk-item risk-caution'><strong>Moderate Risk:</strong>")
	assert.Contains(t, prompt, "doc body")
}

func TestTimelinePrompt(t *testing.T) {
	prompt := TimelinePrompt("the full document", "French")
	assert.Contains(t, prompt, "legal timeline")
	assert.Contains(t, prompt, "Respond in French.")
	assert.True(t, strings.HasSuffix(prompt, "the full document"))
}

func TestLawTopicSuggestionPrompt_TruncatesExcerpt(t *testing.T) {
	excerpt := strings.Repeat("a", 3000)
	prompt := LawTopicSuggestionPrompt(excerpt, "English")

	assert.Contains(t, prompt, strings.Repeat("a", 2000))
	assert.NotContains(t, prompt, strings.Repeat("a", 2001))
	assert.Contains(t, prompt, `"laws"`)
	assert.Contains(t, prompt, `"suggestions"`)
}

func TestLawTopicSuggestionPrompt_TruncatesOnRuneBoundary(t *testing.T) {
	// The 2000th character is multi-byte; the cut must not split it.
	excerpt := strings.Repeat("a", 1999) + "éé"
	prompt := LawTopicSuggestionPrompt(excerpt, "English")

	assert.True(t, utf8.ValidString(prompt))
	assert.Contains(t, prompt, strings.Repeat("a", 1999)+"é\n")
}

func TestClauseDiffPrompt(t *testing.T) {
	prompt := ClauseDiffPrompt("original clause", "modified clause", "Spanish")
	assert.Contains(t, prompt, "A:original clause")
	assert.Contains(t, prompt, "B:modified clause")
	assert.Contains(t, prompt, "Respond in Spanish")
}

func TestQuestionPrompt(t *testing.T) {
	prompt := QuestionPrompt("lease text", "When does it expire?", "English")
	assert.Contains(t, prompt, "DOC:\nlease text")
	assert.Contains(t, prompt, "Q:\nWhen does it expire?")
}

func TestNegotiationOpenPrompt(t *testing.T) {
	prompt := NegotiationOpenPrompt("lease text", "English")
	assert.Contains(t, prompt, "Landlord in Chennai")
	assert.Contains(t, prompt, "Tenant")
	assert.Contains(t, prompt, "lease text")
}
