package service

import (
	"fmt"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

const (
	systemClientAnalysis = "Você é um assistente especializado em análise de clientes para empresa de mudanças."
	systemSales          = "Você é um assistente de vendas especializado em mudanças residenciais e comerciais."
	systemCommunication  = "Você é um especialista em comunicação para empresa de mudanças."
	systemChat           = "Você é a IA Mirante, assistente especializada em mudanças residenciais e comerciais da VIP Mudanças."
)

func classifyPrompt(p domain.ClientProfile) string {
	return fmt.Sprintf(`Analise o seguinte cliente e classifique seu perfil como A, B ou AA:

Nome: %s
Email: %s
Telefone: %s
Empresa: %s

Critérios:
- Perfil AA: Cliente premium, empresa grande, alto potencial de faturamento
- Perfil A: Cliente bom, empresa média, potencial moderado
- Perfil B: Cliente básico, empresa pequena, potencial baixo

Responda apenas com a classificação (A, B ou AA) e uma breve justificativa de até 100 palavras.`,
		p.Name, p.Email, p.Phone, p.Company)
}

func suggestPrompt(in domain.ActionContext) string {
	return fmt.Sprintf(`Sugira a melhor ação para um vendedor com base nos dados do cliente:

Status atual: %s
Perfil: %s
Dias sem contato: %d

Forneça uma sugestão prática e específica de no máximo 80 palavras.`,
		in.Status, in.Tier, in.DaysSinceContact)
}

func messagePrompt(channel domain.Channel, clientName, context string) string {
	switch channel {
	case domain.ChannelEmail:
		return fmt.Sprintf(`Crie um email profissional para o cliente %s.
Contexto: %s

Inclua:
- Assunto atrativo
- Saudação personalizada
- Corpo do email (máximo 200 palavras)
- Assinatura da VIP Mudanças`, clientName, context)
	case domain.ChannelSMS:
		return fmt.Sprintf(`Crie um SMS conciso para o cliente %s.
Contexto: %s

Máximo 160 caracteres, direto e objetivo.`, clientName, context)
	default:
		return fmt.Sprintf(`Crie uma mensagem de WhatsApp profissional e amigável para o cliente %s.
Contexto: %s

A mensagem deve:
- Ser cordial e profissional
- Ter no máximo 150 caracteres
- Incluir call-to-action
- Representar a VIP Mudanças`, clientName, context)
	}
}

func chatPrompt(in domain.ChatRequest) string {
	return fmt.Sprintf(`Você é a IA Mirante, assistente especializada da VIP Mudanças.

Contexto: %s
Pergunta: %s

Responda de forma útil, prática e específica para o negócio de mudanças.
Máximo 200 palavras.`, in.Context, in.Question)
}
