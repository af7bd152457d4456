package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/api/metrics"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// LeadEnqueuer accepts captured leads for asynchronous processing.
type LeadEnqueuer interface {
	Enqueue(lead ports.LeadInput) bool
}

// WebhookHandler receives ManyChat bot deliveries.
type WebhookHandler struct {
	queue LeadEnqueuer
	log   zerolog.Logger
}

func NewWebhookHandler(queue LeadEnqueuer, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{queue: queue, log: log}
}

// ManyChat handles POST /manychat/webhook. The bot always gets a 200 with a
// reply block; persistence happens on the lead queue.
//
// @Summary      ManyChat webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  manyChatResponse
// @Router       /manychat/webhook [post]
func (h *WebhookHandler) ManyChat(c echo.Context) error {
	var d manyChatDelivery
	if err := c.Bind(&d); err != nil {
		metrics.WebhookDeliveriesTotal.WithLabelValues("malformed").Inc()
		h.log.Warn().Err(err).Msg("malformed manychat delivery")
		return c.JSON(http.StatusOK, thankYou(""))
	}

	accepted := h.queue.Enqueue(ports.LeadInput{
		SubscriberID:       d.UserID,
		Message:            d.LastInput,
		Name:               d.CustomFields.Name,
		Phone:              d.CustomFields.Phone,
		Email:              d.CustomFields.Email,
		OriginAddress:      d.CustomFields.OriginAddress,
		DestinationAddress: d.CustomFields.DestinationAddress,
		MoveType:           d.CustomFields.MoveType,
		MoveDate:           d.CustomFields.MoveDate,
	})
	if accepted {
		metrics.WebhookDeliveriesTotal.WithLabelValues("accepted").Inc()
	} else {
		metrics.WebhookDeliveriesTotal.WithLabelValues("dropped").Inc()
	}

	return c.JSON(http.StatusOK, thankYou(d.CustomFields.Name))
}

func thankYou(name string) manyChatResponse {
	return manyChatResponse{
		Version: "v2",
		Content: manyChatContent{
			Messages: []manyChatMessage{{
				Type: "text",
				Text: fmt.Sprintf("Obrigado %s! Seus dados foram registrados e nossa equipe entrará em contato em breve.", name),
			}},
			Actions: []manyChatAction{{
				Action:    "set_field",
				FieldName: "status_cadastro",
				Value:     "concluido",
			}},
		},
	}
}
