package handler

import (
	"time"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

type createEventRequest struct {
	Title       string `json:"titulo"      validate:"required"`
	Description string `json:"descricao"`
	Start       string `json:"data_inicio" validate:"required"`
	End         string `json:"data_fim"`
	Address     string `json:"endereco"`
}

type listEventsResponse struct {
	Events []domain.CalendarEvent `json:"eventos"`
	Total  int                    `json:"total"`
}

type createEventResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Event   *domain.CreatedCalendarEvent `json:"evento"`
}

type driveUploadRequest struct {
	Name     string `json:"nome"     validate:"required"`
	MimeType string `json:"tipo"`
	FolderID string `json:"pasta_id"`
}

type driveUploadResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	File    *domain.DriveFile `json:"arquivo"`
}

type sheetsUpdateRequest struct {
	SheetID string  `json:"planilha_id" validate:"required"`
	Tab     string  `json:"aba"`
	Rows    [][]any `json:"dados"`
}

type sheetsUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*domain.SheetUpdateResult
}

type payerRequest struct {
	Name    string `json:"nome"     validate:"required"`
	TaxID   string `json:"cpf_cnpj" validate:"required"`
	Address string `json:"endereco"`
}

type boletoRequest struct {
	Payer       payerRequest `json:"cliente"    validate:"required"`
	Amount      float64      `json:"valor"      validate:"required,gt=0"`
	DueDate     string       `json:"vencimento" validate:"required"`
	Description string       `json:"descricao"`
}

type boletoResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Boleto  *domain.Boleto `json:"boleto"`
}

type notificationRequest struct {
	Channel    string  `json:"tipo"         validate:"required,oneof=whatsapp email sms"`
	Recipient  string  `json:"destinatario" validate:"required"`
	Message    string  `json:"mensagem"     validate:"required"`
	SendAt     string  `json:"data_envio"   validate:"required"`
	Recurrence *string `json:"recorrencia"  validate:"omitempty,oneof=diario semanal mensal"`
}

type notificationResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Notification *domain.Notification `json:"notificacao"`
}

type calendarStatus struct {
	Active       bool      `json:"ativo"`
	LastSync     time.Time `json:"ultima_sincronizacao"`
	EventsSynced int       `json:"eventos_sincronizados"`
}

type whatsappStatus struct {
	Active       bool   `json:"ativo"`
	SentToday    int    `json:"mensagens_enviadas_hoje"`
	ResponseRate string `json:"taxa_resposta"`
}

type assistantStatus struct {
	Active            bool   `json:"ativo"`
	Analyses          int64  `json:"analises_realizadas"`
	MessagesGenerated int64  `json:"mensagens_geradas"`
	Precision         string `json:"precisao"`
}

type driveStatus struct {
	Active    bool   `json:"ativo"`
	FileCount int    `json:"arquivos_salvos"`
	SpaceUsed string `json:"espaco_usado"`
}

type notificationsStatus struct {
	Active    bool  `json:"ativo"`
	Pending   int64 `json:"fila_pendente"`
	SentToday int   `json:"enviadas_hoje"`
}

type automationsStatusResponse struct {
	Calendar      calendarStatus      `json:"google_agenda"`
	WhatsApp      whatsappStatus      `json:"whatsapp_bot"`
	Assistant     assistantStatus     `json:"ia_mirante"`
	Drive         driveStatus         `json:"google_drive"`
	Notifications notificationsStatus `json:"notificacoes"`
}
