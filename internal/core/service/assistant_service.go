package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

const defaultProviderTimeout = 15 * time.Second

// AssistantService builds provider prompts from business context and falls
// back to canned answers when the provider is absent or fails. A nil provider
// means offline mode.
type AssistantService struct {
	provider ports.TextProvider
	timeout  time.Duration
	log      zerolog.Logger

	analyses atomic.Int64
	messages atomic.Int64
}

func NewAssistantService(provider ports.TextProvider, timeout time.Duration, log zerolog.Logger) *AssistantService {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &AssistantService{provider: provider, timeout: timeout, log: log}
}

// Online reports whether a provider is configured.
func (s *AssistantService) Online() bool {
	return s.provider != nil
}

// Analyses returns how many client classifications were served since start.
func (s *AssistantService) Analyses() int64 { return s.analyses.Load() }

// Messages returns how many messages were generated since start.
func (s *AssistantService) Messages() int64 { return s.messages.Load() }

func (s *AssistantService) ClassifyClient(ctx context.Context, p domain.ClientProfile) domain.ClientAnalysis {
	s.analyses.Add(1)

	if !s.Online() {
		return domain.ClientAnalysis{Tier: domain.TierA, Rationale: offlineRationale, Source: domain.SourceFallback}
	}

	out, err := s.complete(ctx, "classify_client", ports.Completion{
		System:      systemClientAnalysis,
		Prompt:      classifyPrompt(p),
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return domain.ClientAnalysis{Tier: domain.TierA, Rationale: degradedRationale, Source: domain.SourceFallback}
	}

	return domain.ClientAnalysis{Tier: extractTier(out), Rationale: out, Source: domain.SourceProvider}
}

// extractTier checks "AA" before "A" since every AA answer also contains A.
func extractTier(out string) domain.Tier {
	switch {
	case strings.Contains(out, string(domain.TierAA)):
		return domain.TierAA
	case strings.Contains(out, string(domain.TierA)):
		return domain.TierA
	default:
		return domain.TierB
	}
}

func (s *AssistantService) SuggestAction(ctx context.Context, in domain.ActionContext) domain.ActionSuggestion {
	if !s.Online() {
		return domain.ActionSuggestion{Suggestion: offlineSuggestion(in.Status), Source: domain.SourceFallback}
	}

	out, err := s.complete(ctx, "suggest_action", ports.Completion{
		System:      systemSales,
		Prompt:      suggestPrompt(in),
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		return domain.ActionSuggestion{Suggestion: offlineSuggestion(in.Status), Source: domain.SourceFallback}
	}

	return domain.ActionSuggestion{Suggestion: out, Source: domain.SourceProvider}
}

func (s *AssistantService) GenerateMessage(ctx context.Context, in domain.MessageRequest) domain.GeneratedMessage {
	s.messages.Add(1)
	channel := domain.ParseChannel(string(in.Channel))

	if !s.Online() {
		return domain.GeneratedMessage{Channel: channel, Message: offlineMessage(channel, in.ClientName), Source: domain.SourceFallback}
	}

	out, err := s.complete(ctx, "generate_message", ports.Completion{
		System:      systemCommunication,
		Prompt:      messagePrompt(channel, in.ClientName, in.Context),
		MaxTokens:   200,
		Temperature: 0.8,
	})
	if err != nil {
		return domain.GeneratedMessage{Channel: channel, Message: offlineMessage(channel, in.ClientName), Source: domain.SourceFallback}
	}

	return domain.GeneratedMessage{Channel: channel, Message: out, Source: domain.SourceProvider}
}

func (s *AssistantService) Chat(ctx context.Context, in domain.ChatRequest) domain.ChatReply {
	if !s.Online() {
		return domain.ChatReply{Reply: offlineChatReply, Source: domain.SourceFallback}
	}

	out, err := s.complete(ctx, "chat", ports.Completion{
		System:      systemChat,
		Prompt:      chatPrompt(in),
		MaxTokens:   250,
		Temperature: 0.7,
	})
	if err != nil {
		return domain.ChatReply{Reply: degradedChatReply, Source: domain.SourceFallback}
	}

	return domain.ChatReply{Reply: out, Source: domain.SourceProvider}
}

// complete makes a single bounded provider attempt. Empty answers count as
// failures so callers always have text to return.
func (s *AssistantService) complete(ctx context.Context, op string, c ports.Completion) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.provider.Complete(ctx, c)
	if err == nil {
		out = strings.TrimSpace(out)
		if out == "" {
			err = errEmptyCompletion
		}
	}
	if err != nil {
		s.log.Warn().Err(err).Str("operation", op).Msg("provider unavailable, using fallback")
		return "", err
	}
	return out, nil
}
