package service

import (
	"fmt"
)

// Prompt templates for the dashboard analyses. Each builder is a pure
// function of its inputs; the document text is embedded verbatim (only the
// law-topic excerpt is truncated). Every template pins the response language
// so the dashboard renders in the user's locale.

const (
	// suggestionExcerptLimit bounds the excerpt embedded in the law-topic
	// prompt; the other analyses always send the full document.
	suggestionExcerptLimit = 2000
)

func languageOrDefault(language string) string {
	if language == "" {
		return "English"
	}
	return language
}

// KeyFactsPrompt asks for parties, dates and amounts as an HTML fragment.
func KeyFactsPrompt(documentText, language string) string {
	return fmt.Sprintf("Extract key facts (parties, dates, amounts) as HTML. Respond in %s.\n\n%s",
		languageOrDefault(language), documentText)
}

// RiskAnalysisPrompt asks for a risk rundown with exactly two severities.
// The markup directives are load-bearing: the dashboard styles findings by
// the risk-high / risk-caution classes without re-parsing free text.
func RiskAnalysisPrompt(documentText, language string) string {
	return fmt.Sprintf(`Analyze all potential risks in the legal document. For each risk, create an HTML element.
- For HIGH risks (major financial loss, liability), use: <div class='risk-item risk-high'><strong>High Risk:</strong> [Description]</div>
- For MODERATE risks (unfavorable terms, negotiation points), use: <div class='risk-item risk-caution'><strong>Moderate Risk:</strong> [Description]</div>
Respond only with HTML in %s. Document:
%s`, languageOrDefault(language), documentText)
}

// TimelinePrompt asks for the document's key dates and deadlines.
func TimelinePrompt(documentText, language string) string {
	return fmt.Sprintf("Create a legal timeline (key dates, deadlines) as HTML. Respond in %s.\n\n%s",
		languageOrDefault(language), documentText)
}

// NegotiationOpenPrompt scripts the opening turn of the negotiation
// simulator: the model plays a Chennai landlord against the user's tenant.
func NegotiationOpenPrompt(documentText, language string) string {
	return fmt.Sprintf("You are a Landlord in Chennai. I am a Tenant. Start negotiating this document in %s.\n\n%s",
		languageOrDefault(language), documentText)
}

// LawTopicSuggestionPrompt asks for relevant legal topics and practical
// suggestions for the document excerpt, in a strict minimal JSON schema the
// dashboard can render. The excerpt is truncated to its first 2000 characters.
func LawTopicSuggestionPrompt(documentExcerpt, language string) string {
	if len(documentExcerpt) > suggestionExcerptLimit {
		if runes := []rune(documentExcerpt); len(runes) > suggestionExcerptLimit {
			documentExcerpt = string(runes[:suggestionExcerptLimit])
		}
	}
	return fmt.Sprintf("You are a legal assistant. For the document excerpt below, identify relevant legal topics, explain why, "+
		"and propose 2 practical suggestions for someone in Chennai. Respond in %s.\n\n"+
		"Document excerpt:\n%s\n\n"+
		`Respond ONLY in this JSON format: {"laws": [{"title": "Law Title", "reason": "Explanation"}], "suggestions": ["Suggestion 1", "Suggestion 2"]}`,
		languageOrDefault(language), documentExcerpt)
}

// ClauseDiffPrompt asks for an HTML list of differences and risks between
// two clause texts labeled A and B.
func ClauseDiffPrompt(clauseA, clauseB, language string) string {
	return fmt.Sprintf("Compare Clause A and B. Respond in %s with an HTML list of differences and risks.\nA:%s\nB:%s",
		languageOrDefault(language), clauseA, clauseB)
}

// QuestionPrompt asks a free-form question against the document text.
func QuestionPrompt(documentText, question, language string) string {
	return fmt.Sprintf("Answer in %s. DOC:\n%s\n\nQ:\n%s",
		languageOrDefault(language), documentText, question)
}
