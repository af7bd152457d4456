package ports

import (
	"context"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// LeadRepository persists pre-registered leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
}
