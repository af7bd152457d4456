package ports

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// AssistantService turns business context into natural-language answers.
// None of its operations fail: provider problems degrade to canned output.
type AssistantService interface {
	ClassifyClient(ctx context.Context, profile domain.ClientProfile) domain.ClientAnalysis
	SuggestAction(ctx context.Context, in domain.ActionContext) domain.ActionSuggestion
	GenerateMessage(ctx context.Context, in domain.MessageRequest) domain.GeneratedMessage
	Chat(ctx context.Context, in domain.ChatRequest) domain.ChatReply
}

// Completion is a single-turn request to a text-generation provider.
type Completion struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// TextProvider is an external text-generation service.
type TextProvider interface {
	Complete(ctx context.Context, c Completion) (string, error)
}
