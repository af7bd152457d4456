package domain

import "time"

const LeadSourceManyChat = "ManyChat Bot"

// Lead is a pre-registered prospective client captured by an inbound channel
// (currently the ManyChat bot) awaiting follow-up by the sales team.
type Lead struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Name               string    `json:"nome" bson:"nome"`
	Phone              string    `json:"telefone" bson:"telefone"`
	Email              string    `json:"email" bson:"email"`
	OriginAddress      string    `json:"endereco_origem" bson:"endereco_origem"`
	DestinationAddress string    `json:"endereco_destino" bson:"endereco_destino"`
	MoveType           string    `json:"tipo_mudanca" bson:"tipo_mudanca"`
	MoveDate           string    `json:"data_mudanca" bson:"data_mudanca"`
	Source             string    `json:"fonte" bson:"fonte"`
	Status             string    `json:"status" bson:"status"`
	ManyChatUserID     string    `json:"manychat_user_id,omitempty" bson:"manychat_user_id,omitempty"`
	CreatedAt          time.Time `json:"data_cadastro" bson:"data_cadastro"`
}
