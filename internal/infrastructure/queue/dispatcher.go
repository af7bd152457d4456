package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vipmudancas/mirante/internal/api/metrics"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes captured leads to a fixed set of workers using consistent
// hashing on the subscriber id, so deliveries from one subscriber are handled
// in order by a single worker.
type Dispatcher struct {
	workers []chan ports.LeadInput
	service ports.LeadService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LeadService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LeadInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LeadInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Close has drained their channel.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a lead to the worker responsible for its subscriber. It never
// blocks: when that worker's buffer is full the lead is dropped and false is
// returned.
func (d *Dispatcher) Enqueue(lead ports.LeadInput) bool {
	idx := d.shardIndex(lead.SubscriberID)
	select {
	case d.workers[idx] <- lead:
		metrics.LeadQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return true
	default:
		d.log.Warn().Str("subscriber", lead.SubscriberID).Int("worker_id", idx).Msg("lead queue full, dropping delivery")
		return false
	}
}

// Close stops accepting leads and waits for workers to drain. Enqueue must
// not be called after Close.
func (d *Dispatcher) Close() {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// shardIndex maps a subscriber id deterministically to a worker index.
func (d *Dispatcher) shardIndex(subscriberID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subscriberID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LeadInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case lead, ok := <-ch:
			if !ok {
				return
			}
			metrics.LeadQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

			if err := d.service.Process(ctx, lead); err != nil {
				metrics.LeadsProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("subscriber", lead.SubscriberID).
					Int("worker_id", id).
					Msg("lead processing failed")
				continue
			}
			metrics.LeadsProcessedTotal.WithLabelValues("ok").Inc()
		}
	}
}
