package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

const defaultMoveType = "residencial"

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, subscriberID, message string) (bool, error)
	Mark(ctx context.Context, subscriberID, message string) error
}

type leadService struct {
	repo  ports.LeadRepository
	dedup DedupChecker
	log   zerolog.Logger
	now   func() time.Time
}

// NewLeadService returns a LeadService implementation. dedup may be nil, in
// which case every delivery is processed.
func NewLeadService(repo ports.LeadRepository, dedup DedupChecker, log zerolog.Logger) ports.LeadService {
	return &leadService{repo: repo, dedup: dedup, log: log, now: time.Now}
}

// Process deduplicates and persists a single lead captured by the chat bot.
func (s *leadService) Process(ctx context.Context, in ports.LeadInput) error {
	// 1. Idempotency check: bots retry deliveries, skip repeats silently.
	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, in.SubscriberID, in.Message)
		if err != nil {
			s.log.Warn().Err(err).Str("subscriber", in.SubscriberID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Str("subscriber", in.SubscriberID).Msg("duplicate lead skipped")
			return nil
		}
	}

	moveType := in.MoveType
	if moveType == "" {
		moveType = defaultMoveType
	}

	lead := &domain.Lead{
		Name:               in.Name,
		Phone:              in.Phone,
		Email:              in.Email,
		OriginAddress:      in.OriginAddress,
		DestinationAddress: in.DestinationAddress,
		MoveType:           moveType,
		MoveDate:           in.MoveDate,
		Source:             domain.LeadSourceManyChat,
		Status:             domain.LeadStatusNew,
		ManyChatUserID:     in.SubscriberID,
		CreatedAt:          s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, lead); err != nil {
		return fmt.Errorf("process lead: %w", err)
	}

	// 2. Mark only after the write so a failed insert can be retried.
	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, in.SubscriberID, in.Message); err != nil {
			s.log.Warn().Err(err).Str("subscriber", in.SubscriberID).Msg("failed to set dedup key")
		}
	}

	s.log.Info().
		Str("subscriber", in.SubscriberID).
		Str("lead_id", lead.ID).
		Msg("lead registered")

	return nil
}
