package service

import (
	"errors"
	"fmt"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

const (
	offlineRationale  = "Análise simulada: Cliente com potencial moderado baseado nos dados fornecidos."
	degradedRationale = "Análise padrão aplicada devido a erro na IA."

	genericSuggestion = "Mantenha contato regular e acompanhe o cliente."

	offlineChatReply  = "Olá! Sou a IA Mirante. No momento estou em modo simulação. Como posso ajudar com suas vendas e gestão de clientes?"
	degradedChatReply = "Desculpe, estou com dificuldades técnicas no momento. Tente novamente em alguns instantes."
)

var statusSuggestions = map[string]string{
	domain.LeadStatusNew:        "Entre em contato em até 24h. Envie WhatsApp personalizado apresentando a empresa e agendando visita técnica.",
	domain.LeadStatusInAnalysis: "Acompanhe o processo. Envie materiais informativos e mantenha contato regular a cada 3 dias.",
	domain.LeadStatusLost:       "Analise os motivos da perda. Considere nova abordagem em 30 dias com oferta diferenciada.",
}

func offlineSuggestion(status string) string {
	if s, ok := statusSuggestions[status]; ok {
		return s
	}
	return genericSuggestion
}

func offlineMessage(channel domain.Channel, clientName string) string {
	switch channel {
	case domain.ChannelEmail:
		return fmt.Sprintf("Assunto: Sua mudança com a VIP Mudanças\n\nOlá %s,\n\nEsperamos que esteja bem! Entramos em contato para apresentar nossos serviços de mudança...", clientName)
	case domain.ChannelSMS:
		return fmt.Sprintf("VIP Mudanças: Olá %s! Podemos ajudar com sua mudança? Ligue (11) 99999-9999", clientName)
	default:
		return fmt.Sprintf("Olá %s! 👋 Somos da VIP Mudanças. Podemos ajudar com sua mudança? Entre em contato: (11) 99999-9999", clientName)
	}
}

var errEmptyCompletion = errors.New("provider returned an empty completion")
