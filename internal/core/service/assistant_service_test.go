package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

type stubProvider struct {
	completeFn func(ctx context.Context, c ports.Completion) (string, error)
	calls      []ports.Completion
}

func (p *stubProvider) Complete(ctx context.Context, c ports.Completion) (string, error) {
	p.calls = append(p.calls, c)
	return p.completeFn(ctx, c)
}

func replying(out string) *stubProvider {
	return &stubProvider{completeFn: func(context.Context, ports.Completion) (string, error) { return out, nil }}
}

func failing() *stubProvider {
	return &stubProvider{completeFn: func(context.Context, ports.Completion) (string, error) {
		return "", errors.New("upstream 503")
	}}
}

func offlineAssistant() *AssistantService {
	return NewAssistantService(nil, time.Second, zerolog.Nop())
}

func onlineAssistant(p *stubProvider) *AssistantService {
	return NewAssistantService(p, time.Second, zerolog.Nop())
}

func TestAssistant_ClassifyClient_Offline(t *testing.T) {
	svc := offlineAssistant()

	inputs := []domain.ClientProfile{
		{},
		{Name: "Carlos", Email: "c@x.com", Phone: "11", Company: "Grande SA"},
	}
	for _, in := range inputs {
		got := svc.ClassifyClient(context.Background(), in)
		if got.Tier != domain.TierA || got.Rationale != offlineRationale || got.Source != domain.SourceFallback {
			t.Fatalf("unexpected offline analysis for %+v: %+v", in, got)
		}
	}
	if svc.Analyses() != 2 {
		t.Fatalf("expected 2 analyses counted, got %d", svc.Analyses())
	}
}

func TestAssistant_ClassifyClient_TierExtraction(t *testing.T) {
	cases := []struct {
		reply string
		want  domain.Tier
	}{
		{"AA - empresa grande com alto potencial", domain.TierAA},
		{"Perfil A: empresa média", domain.TierA},
		{"perfil b, empresa pequena", domain.TierB},
		{"B - Atende pequenas demandas", domain.TierA},
		{"", domain.TierA},
	}
	for _, tc := range cases {
		got := onlineAssistant(replying(tc.reply)).ClassifyClient(context.Background(), domain.ClientProfile{Name: "X"})
		if got.Tier != tc.want {
			t.Errorf("reply %q: expected tier %s, got %s", tc.reply, tc.want, got.Tier)
		}
		switch got.Tier {
		case domain.TierAA, domain.TierA, domain.TierB:
		default:
			t.Errorf("reply %q: tier outside AA/A/B: %q", tc.reply, got.Tier)
		}
	}
}

func TestAssistant_ClassifyClient_PromptAndRationale(t *testing.T) {
	p := replying("  AA: rede de lojas  ")
	got := onlineAssistant(p).ClassifyClient(context.Background(), domain.ClientProfile{
		Name: "Ana", Email: "ana@x.com", Phone: "1199", Company: "Loja",
	})

	if got.Rationale != "AA: rede de lojas" || got.Source != domain.SourceProvider {
		t.Fatalf("unexpected analysis: %+v", got)
	}
	if len(p.calls) != 1 {
		t.Fatalf("expected a single provider attempt, got %d", len(p.calls))
	}
	call := p.calls[0]
	if call.System != systemClientAnalysis || call.MaxTokens != 150 {
		t.Fatalf("unexpected completion settings: %+v", call)
	}
	for _, want := range []string{"Nome: Ana", "Email: ana@x.com", "Telefone: 1199", "Empresa: Loja", "Perfil AA"} {
		if !strings.Contains(call.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAssistant_ClassifyClient_ProviderFailure(t *testing.T) {
	p := failing()
	got := onlineAssistant(p).ClassifyClient(context.Background(), domain.ClientProfile{})

	if got.Tier != domain.TierA || got.Rationale != degradedRationale || got.Source != domain.SourceFallback {
		t.Fatalf("unexpected degraded analysis: %+v", got)
	}
	if len(p.calls) != 1 {
		t.Fatalf("expected no retries, got %d calls", len(p.calls))
	}
}

func TestAssistant_ProviderTimeoutIsBounded(t *testing.T) {
	p := &stubProvider{completeFn: func(ctx context.Context, _ ports.Completion) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	svc := NewAssistantService(p, 20*time.Millisecond, zerolog.Nop())

	start := time.Now()
	got := svc.Chat(context.Background(), domain.ChatRequest{Question: "oi"})
	if time.Since(start) > time.Second {
		t.Fatalf("provider call was not bounded by the timeout")
	}
	if got.Reply != degradedChatReply {
		t.Fatalf("expected degraded reply, got %q", got.Reply)
	}
}

func TestAssistant_SuggestAction_Offline(t *testing.T) {
	svc := offlineAssistant()

	got := svc.SuggestAction(context.Background(), domain.ActionContext{Status: "Novo"})
	if got.Suggestion != statusSuggestions[domain.LeadStatusNew] {
		t.Fatalf("unexpected suggestion for Novo: %q", got.Suggestion)
	}
	if !strings.HasPrefix(got.Suggestion, "Entre em contato em até 24h") {
		t.Fatalf("unexpected canned Novo text: %q", got.Suggestion)
	}

	got = svc.SuggestAction(context.Background(), domain.ActionContext{Status: "Desconhecido"})
	if got.Suggestion != genericSuggestion {
		t.Fatalf("expected generic suggestion, got %q", got.Suggestion)
	}
}

func TestAssistant_SuggestAction_Online(t *testing.T) {
	p := replying("Ligue hoje.")
	got := onlineAssistant(p).SuggestAction(context.Background(), domain.ActionContext{Status: "Perdido", Tier: "B", DaysSinceContact: 12})

	if got.Suggestion != "Ligue hoje." || got.Source != domain.SourceProvider {
		t.Fatalf("unexpected suggestion: %+v", got)
	}
	if !strings.Contains(p.calls[0].Prompt, "Dias sem contato: 12") {
		t.Fatalf("prompt missing days since contact: %s", p.calls[0].Prompt)
	}

	got = onlineAssistant(failing()).SuggestAction(context.Background(), domain.ActionContext{Status: "Perdido"})
	if got.Suggestion != statusSuggestions[domain.LeadStatusLost] || got.Source != domain.SourceFallback {
		t.Fatalf("expected offline mapping on failure, got %+v", got)
	}
}

func TestAssistant_GenerateMessage_Offline(t *testing.T) {
	svc := offlineAssistant()

	email := svc.GenerateMessage(context.Background(), domain.MessageRequest{Channel: "email", ClientName: "Joana"})
	if email.Channel != domain.ChannelEmail || !strings.Contains(email.Message, "Joana") {
		t.Fatalf("unexpected email message: %+v", email)
	}

	unknown := svc.GenerateMessage(context.Background(), domain.MessageRequest{Channel: "unknown", ClientName: "Joana"})
	whatsapp := svc.GenerateMessage(context.Background(), domain.MessageRequest{Channel: "whatsapp", ClientName: "Joana"})
	if unknown.Channel != domain.ChannelWhatsApp || unknown.Message != whatsapp.Message {
		t.Fatalf("unknown channel should use the whatsapp template, got %+v", unknown)
	}

	sms := svc.GenerateMessage(context.Background(), domain.MessageRequest{Channel: "sms", ClientName: "Joana"})
	if !strings.HasPrefix(sms.Message, "VIP Mudanças: Olá Joana!") {
		t.Fatalf("unexpected sms message: %q", sms.Message)
	}
}

func TestAssistant_GenerateMessage_Templates(t *testing.T) {
	cases := map[domain.Channel]string{
		domain.ChannelWhatsApp: "150 caracteres",
		domain.ChannelSMS:      "160 caracteres",
		domain.ChannelEmail:    "200 palavras",
		"fax":                  "WhatsApp",
	}
	for channel, marker := range cases {
		p := replying("ok")
		onlineAssistant(p).GenerateMessage(context.Background(), domain.MessageRequest{Channel: channel, ClientName: "Rui", Context: "orçamento"})
		prompt := p.calls[0].Prompt
		if !strings.Contains(prompt, marker) || !strings.Contains(prompt, "Rui") || !strings.Contains(prompt, "orçamento") {
			t.Errorf("channel %s: prompt %q missing %q", channel, prompt, marker)
		}
	}

	got := onlineAssistant(failing()).GenerateMessage(context.Background(), domain.MessageRequest{Channel: "sms", ClientName: "Rui"})
	if got.Source != domain.SourceFallback || !strings.Contains(got.Message, "Rui") {
		t.Fatalf("unexpected degraded message: %+v", got)
	}
}

func TestAssistant_Chat(t *testing.T) {
	got := offlineAssistant().Chat(context.Background(), domain.ChatRequest{Question: "Como vender mais?"})
	if got.Reply != offlineChatReply {
		t.Fatalf("unexpected offline reply: %q", got.Reply)
	}

	p := replying("Ofereça visita técnica.")
	got = onlineAssistant(p).Chat(context.Background(), domain.ChatRequest{Question: "Como vender mais?", Context: "cliente AA"})
	if got.Reply != "Ofereça visita técnica." {
		t.Fatalf("unexpected reply: %q", got.Reply)
	}
	if p.calls[0].System != systemChat || !strings.Contains(p.calls[0].Prompt, "Pergunta: Como vender mais?") {
		t.Fatalf("unexpected completion: %+v", p.calls[0])
	}

	got = onlineAssistant(replying("   ")).Chat(context.Background(), domain.ChatRequest{})
	if got.Reply != degradedChatReply {
		t.Fatalf("empty completion should degrade, got %q", got.Reply)
	}
}
