package handler

// Assistant requests are never rejected for missing content; absent fields
// reach the prompt (or the canned reply) as empty strings.
type analyzeClientRequest struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Company string `json:"empresa"`
}

type analyzeClientResponse struct {
	Tier       string `json:"perfil"`
	Rationale  string `json:"justificativa"`
	AnalyzedBy string `json:"analisado_por"`
}

type suggestActionRequest struct {
	Status           string `json:"status"`
	Tier             string `json:"perfil"`
	DaysSinceContact int    `json:"dias_sem_contato" validate:"gte=0"`
}

type suggestActionResponse struct {
	Suggestion  string `json:"sugestao"`
	GeneratedBy string `json:"gerado_por"`
}

type generateMessageRequest struct {
	Channel    string `json:"tipo"`
	ClientName string `json:"nome_cliente"`
	Context    string `json:"contexto"`
}

type generateMessageResponse struct {
	Channel     string `json:"tipo"`
	Message     string `json:"mensagem"`
	GeneratedBy string `json:"gerado_por"`
}

type chatRequest struct {
	Question string `json:"pergunta"`
	Context  string `json:"contexto"`
}

type chatResponse struct {
	Reply     string `json:"resposta"`
	Assistant string `json:"assistente"`
}
