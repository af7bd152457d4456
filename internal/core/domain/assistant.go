package domain

// Tier is the sales-priority label assigned to a prospective client.
type Tier string

const (
	TierAA Tier = "AA"
	TierA  Tier = "A"
	TierB  Tier = "B"
)

// Channel is the delivery medium a generated message is written for.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
)

// ParseChannel maps a raw channel name to a known Channel. Unknown names
// resolve to WhatsApp.
func ParseChannel(s string) Channel {
	switch Channel(s) {
	case ChannelEmail:
		return ChannelEmail
	case ChannelSMS:
		return ChannelSMS
	default:
		return ChannelWhatsApp
	}
}

// Lead statuses used by the sales pipeline.
const (
	LeadStatusNew        = "Novo"
	LeadStatusInAnalysis = "Em análise"
	LeadStatusLost       = "Perdido"
)

// Source records whether an assistant answer came from the provider or from
// the offline fallback.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// AssistantName is reported to clients as the author of every assistant answer.
const AssistantName = "IA Mirante"

type ClientProfile struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

type ClientAnalysis struct {
	Tier      Tier
	Rationale string
	Source    Source
}

type ActionContext struct {
	Status           string
	Tier             string
	DaysSinceContact int
}

type ActionSuggestion struct {
	Suggestion string
	Source     Source
}

type MessageRequest struct {
	Channel    Channel
	ClientName string
	Context    string
}

type GeneratedMessage struct {
	Channel Channel
	Message string
	Source  Source
}

type ChatRequest struct {
	Question string
	Context  string
}

type ChatReply struct {
	Reply  string
	Source Source
}
