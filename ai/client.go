// Package ai wraps the external generative model behind a fail-soft client.
// Every call produces displayable text: when the model is unreachable or not
// configured, the result degrades to an error string instead of failing, so
// each dashboard card always has something to render.
package ai

import (
	"context"
	"fmt"

	"legaldash-backend/models"
)

// Result is the outcome of one model call. Exactly one of the two states
// holds: Ok with generated text, or Degraded with a human-readable reason.
type Result struct {
	Text     string
	Degraded bool
	Reason   string
}

// Ok builds a successful result.
func Ok(text string) Result {
	return Result{Text: text}
}

// Degraded builds a failed-soft result carrying the display text.
func Degraded(reason string) Result {
	return Result{Degraded: true, Reason: reason}
}

// DegradedErr builds a failed-soft result from an underlying error.
func DegradedErr(err error) Result {
	return Degraded(fmt.Sprintf("AI error: %v", err))
}

// Display collapses the result to the string shown to the user.
func (r Result) Display() string {
	if r.Degraded {
		return r.Reason
	}
	return r.Text
}

// Generator is the model client used by the services. It is constructed once
// and injected; tests substitute a fake.
type Generator interface {
	// Generate runs a single-turn completion.
	Generate(ctx context.Context, prompt string) Result

	// Chat runs one multi-turn exchange over the caller-owned history and
	// returns the history with the model's turn appended on success. On
	// failure the history is returned unchanged.
	Chat(ctx context.Context, history []models.NegotiationTurn, message string) (Result, []models.NegotiationTurn)

	// Configured reports whether a credential is present. Callers use this to
	// skip optional AI work entirely.
	Configured() bool
}
