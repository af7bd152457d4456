package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/core/ports"
)

type recordingService struct {
	mu    sync.Mutex
	seen  []ports.LeadInput
	fail  bool
	block chan struct{}
}

func (s *recordingService) Process(_ context.Context, in ports.LeadInput) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, in)
	if s.fail {
		return errors.New("boom")
	}
	return nil
}

func TestDispatcher_ProcessesInOrderPerSubscriber(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(3, svc, zerolog.Nop())
	d.Start(context.Background())

	for _, msg := range []string{"1", "2", "3", "4"} {
		if !d.Enqueue(ports.LeadInput{SubscriberID: "mc-1", Message: msg}) {
			t.Fatalf("enqueue rejected")
		}
	}
	d.Close()

	if len(svc.seen) != 4 {
		t.Fatalf("expected 4 processed leads, got %d", len(svc.seen))
	}
	for i, want := range []string{"1", "2", "3", "4"} {
		if svc.seen[i].Message != want {
			t.Fatalf("order broken at %d: got %q, want %q", i, svc.seen[i].Message, want)
		}
	}
}

func TestDispatcher_ContinuesAfterFailure(t *testing.T) {
	svc := &recordingService{fail: true}
	d := NewDispatcher(1, svc, zerolog.Nop())
	d.Start(context.Background())

	d.Enqueue(ports.LeadInput{SubscriberID: "a"})
	d.Enqueue(ports.LeadInput{SubscriberID: "b"})
	d.Close()

	if len(svc.seen) != 2 {
		t.Fatalf("expected worker to keep processing after failure, got %d", len(svc.seen))
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	svc := &recordingService{block: make(chan struct{})}
	d := NewDispatcher(1, svc, zerolog.Nop())

	// Workers are not started, so the buffer fills deterministically.
	for i := 0; i < channelBuffer; i++ {
		if !d.Enqueue(ports.LeadInput{SubscriberID: "x"}) {
			t.Fatalf("enqueue %d rejected before buffer was full", i)
		}
	}
	if d.Enqueue(ports.LeadInput{SubscriberID: "x"}) {
		t.Fatalf("expected enqueue to fail on a full buffer")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	if d.shardIndex("mc-42") != d.shardIndex("mc-42") {
		t.Fatalf("shard index must be deterministic")
	}
	for _, id := range []string{"", "a", "mc-1", "mc-999999"} {
		if idx := d.shardIndex(id); idx < 0 || idx >= defaultWorkers {
			t.Fatalf("shard index out of range for %q: %d", id, idx)
		}
	}
}
