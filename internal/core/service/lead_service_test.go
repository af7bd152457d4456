package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubLeadRepo struct {
	insertErr error
	inserted  []*domain.Lead
}

func (r *stubLeadRepo) Insert(_ context.Context, lead *domain.Lead) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	lead.ID = "lead-1"
	r.inserted = append(r.inserted, lead)
	return nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, subscriberID, message string) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, subscriberID, message string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, subscriberID+":"+message)
	return nil
}

func sampleLead() ports.LeadInput {
	return ports.LeadInput{
		SubscriberID:       "mc-123",
		Message:            "quero orçamento",
		Name:               "Paulo",
		Phone:              "11999990000",
		Email:              "paulo@x.com",
		OriginAddress:      "Rua A, 1",
		DestinationAddress: "Rua B, 2",
		MoveDate:           "2025-07-01",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLeadService_Process_HappyPath(t *testing.T) {
	repo := &stubLeadRepo{}
	dedup := &stubDedup{}

	svc := NewLeadService(repo, dedup, zerolog.Nop())
	if err := svc.Process(context.Background(), sampleLead()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected lead inserted, got %d", len(repo.inserted))
	}
	lead := repo.inserted[0]
	if lead.Status != domain.LeadStatusNew || lead.Source != domain.LeadSourceManyChat {
		t.Errorf("unexpected status/source: %s/%s", lead.Status, lead.Source)
	}
	if lead.MoveType != "residencial" {
		t.Errorf("expected default move type, got %q", lead.MoveType)
	}
	if lead.ManyChatUserID != "mc-123" || lead.CreatedAt.IsZero() {
		t.Errorf("unexpected lead metadata: %+v", lead)
	}
	if len(dedup.marked) != 1 {
		t.Errorf("expected dedup key marked")
	}
}

func TestLeadService_Process_DuplicateSkipped(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := NewLeadService(repo, &stubDedup{dupResult: true}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleLead()); err != nil {
		t.Fatalf("duplicate should not error, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("duplicate lead should not be inserted")
	}
}

func TestLeadService_Process_DedupErrorStillProcesses(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := NewLeadService(repo, &stubDedup{dupErr: errors.New("redis down"), markErr: errors.New("redis down")}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleLead()); err != nil {
		t.Fatalf("expected dedup failure to be tolerated, got %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected lead inserted despite dedup failure")
	}
}

func TestLeadService_Process_InsertFailure(t *testing.T) {
	dedup := &stubDedup{}
	svc := NewLeadService(&stubLeadRepo{insertErr: errors.New("mongo down")}, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleLead()); err == nil {
		t.Fatalf("expected insert error to propagate")
	}
	if len(dedup.marked) != 0 {
		t.Fatalf("failed insert must not be marked as processed")
	}
}

func TestLeadService_Process_WithoutDedup(t *testing.T) {
	repo := &stubLeadRepo{}
	in := sampleLead()
	in.MoveType = "comercial"

	if err := NewLeadService(repo, nil, zerolog.Nop()).Process(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.inserted[0].MoveType != "comercial" {
		t.Fatalf("expected explicit move type kept, got %q", repo.inserted[0].MoveType)
	}
}
