package simulated

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

const boletoStatusIssued = "emitido"

// Billing simulates boleto issuance for storage rentals.
type Billing struct{}

func (b *Billing) IssueBoleto(_ context.Context, in domain.BoletoRequest) (*domain.Boleto, error) {
	return &domain.Boleto{
		ID:          newID("boleto"),
		Barcode:     "12345678901234567890123456789012345678901234",
		DigitalLine: "12345.67890 12345.678901 23456.789012 3 45678901234567890",
		PDFURL:      "https://api.cora.com.br/boletos/exemplo.pdf",
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Status:      boletoStatusIssued,
	}, nil
}
