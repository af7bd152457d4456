package domain

import "time"

// CalendarTimeZone is the zone every calendar entry is created in.
const CalendarTimeZone = "America/Sao_Paulo"

// CalendarEvent is a scheduled visit or move as shown in the agenda.
type CalendarEvent struct {
	ID      string `json:"id"`
	Title   string `json:"titulo"`
	Date    string `json:"data"`
	Time    string `json:"hora"`
	Address string `json:"endereco"`
	Kind    string `json:"tipo"`
}

type NewCalendarEvent struct {
	Title       string
	Description string
	Start       string
	End         string
	Address     string
}

type CreatedCalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"titulo"`
	CreatedAt time.Time `json:"data_criacao"`
	Link      string    `json:"link"`
}

type DriveUpload struct {
	Name     string
	MimeType string
	FolderID string
}

type DriveFile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MimeType       string    `json:"mimeType"`
	WebViewLink    string    `json:"webViewLink"`
	WebContentLink string    `json:"webContentLink"`
	CreatedTime    time.Time `json:"createdTime"`
}

type SheetUpdate struct {
	SheetID string
	Tab     string
	Rows    [][]any
}

type SheetUpdateResult struct {
	SheetID     string    `json:"planilha_id"`
	Tab         string    `json:"aba"`
	RowsUpdated int       `json:"linhas_atualizadas"`
	Timestamp   time.Time `json:"timestamp"`
}

type Payer struct {
	Name    string `json:"nome"`
	TaxID   string `json:"cpf_cnpj"`
	Address string `json:"endereco"`
}

type BoletoRequest struct {
	Payer       Payer
	Amount      float64
	DueDate     string
	Description string
}

// Boleto is a Brazilian bank payment slip issued for storage rentals.
type Boleto struct {
	ID          string  `json:"id"`
	Barcode     string  `json:"codigo_barras"`
	DigitalLine string  `json:"linha_digitavel"`
	PDFURL      string  `json:"url_pdf"`
	Amount      float64 `json:"valor"`
	DueDate     string  `json:"vencimento"`
	Status      string  `json:"status"`
}

type NotificationRequest struct {
	Channel    string
	Recipient  string
	Message    string
	SendAt     string
	Recurrence *string
}

type Notification struct {
	ID         string    `json:"id"`
	Channel    string    `json:"tipo"`
	Recipient  string    `json:"destinatario"`
	Message    string    `json:"mensagem"`
	SendAt     string    `json:"data_envio"`
	Recurrence *string   `json:"recorrencia"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"criado_em"`
}
