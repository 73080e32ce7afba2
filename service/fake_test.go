package service

import (
	"context"
	"sync"

	"legaldash-backend/ai"
	"legaldash-backend/models"
)

// fakeGenerator stands in for the Gemini client. It records every prompt and
// answers with a canned reply, or degrades like the real client when not
// configured.
type fakeGenerator struct {
	mu         sync.Mutex
	configured bool
	reply      string
	prompts    []string
	chatCalls  int
}

func (f *fakeGenerator) Configured() bool {
	return f.configured
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) ai.Result {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if !f.configured {
		return ai.Degraded("AI API key not configured.")
	}
	return ai.Ok(f.reply)
}

func (f *fakeGenerator) Chat(ctx context.Context, history []models.NegotiationTurn, message string) (ai.Result, []models.NegotiationTurn) {
	f.mu.Lock()
	f.chatCalls++
	f.mu.Unlock()

	if !f.configured {
		return ai.Degraded("AI API key not configured."), history
	}
	return ai.Ok(f.reply), append(history, models.NewTurn(models.RoleModel, f.reply))
}

func (f *fakeGenerator) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeGenerator) recordedPrompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}
