package ports

import "context"

// LeadInput is the DTO passed from the webhook transport to LeadService.
type LeadInput struct {
	SubscriberID       string
	Message            string
	Name               string
	Phone              string
	Email              string
	OriginAddress      string
	DestinationAddress string
	MoveType           string
	MoveDate           string
}

// LeadService pre-registers leads captured by inbound channels.
type LeadService interface {
	Process(ctx context.Context, in LeadInput) error
}
