package handler

// manyChatDelivery is the subset of the ManyChat external request payload
// the lead intake reads.
type manyChatDelivery struct {
	UserID       string         `json:"user_id"`
	LastInput    string         `json:"last_input_text"`
	CustomFields manyChatFields `json:"custom_fields"`
}

type manyChatFields struct {
	Name               string `json:"nome"`
	Phone              string `json:"telefone"`
	Email              string `json:"email"`
	OriginAddress      string `json:"endereco_origem"`
	DestinationAddress string `json:"endereco_destino"`
	MoveType           string `json:"tipo_mudanca"`
	MoveDate           string `json:"data_mudanca"`
}

// manyChatResponse is a ManyChat dynamic block (v2) answer.
type manyChatResponse struct {
	Version string          `json:"version"`
	Content manyChatContent `json:"content"`
}

type manyChatContent struct {
	Messages []manyChatMessage `json:"messages"`
	Actions  []manyChatAction  `json:"actions"`
}

type manyChatMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type manyChatAction struct {
	Action    string `json:"action"`
	FieldName string `json:"field_name"`
	Value     string `json:"value"`
}
