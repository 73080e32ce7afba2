package models

// AnalysisResult is the full payload produced by one analysis request.
// It exists only for the duration of the request/response cycle.
type AnalysisResult struct {
	KeyFacts           string            `json:"key_facts"`
	RiskAnalysis       string            `json:"risk_analysis"`
	Lifespan           string            `json:"lifespan"`
	OriginalDocument   string            `json:"original_document"`
	FilledDocument     string            `json:"filled_document"`
	NegotiationStart   string            `json:"negotiation_start"`
	NegotiationHistory []NegotiationTurn `json:"negotiation_history"`
}

// LawSearchResult pairs the rendered law list with the raw AI suggestion
// text. The suggestion text is passed through unparsed; the client decides
// whether it is usable JSON.
type LawSearchResult struct {
	LawsHTML          string `json:"laws_html"`
	AISuggestionsJSON string `json:"ai_suggestions_json"`
}
