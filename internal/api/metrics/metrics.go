// Package metrics defines and registers all custom Prometheus metrics for the
// Mirante API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto; HTTP request metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mirante"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "bad_request"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantRequestsTotal counts assistant answers.
// Labels:
//   - operation: "classify_client", "suggest_action", "generate_message", "chat"
//   - source: "provider" or "fallback"
var AssistantRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_requests_total",
		Help:      "Total number of assistant answers, by operation and answer source.",
	},
	[]string{"operation", "source"},
)

// ClientTiersTotal counts tiers assigned by the client classification.
// Label:
//   - tier: "AA", "A" or "B"
var ClientTiersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_tiers_total",
		Help:      "Total number of client classifications, by assigned tier.",
	},
	[]string{"tier"},
)

// ProviderRequestDuration measures calls to the text-generation provider.
// Label:
//   - outcome: "ok" or "error"
var ProviderRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Duration of text-generation provider requests.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 15, 30},
	},
	[]string{"outcome"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookDeliveriesTotal counts inbound chat-bot deliveries.
// Label:
//   - result: "accepted", "dropped" or "malformed"
var WebhookDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of inbound chat-bot webhook deliveries, by result.",
	},
	[]string{"result"},
)

// LeadsProcessedTotal counts leads handled by the intake workers.
// Label:
//   - result: "ok" or "error"
var LeadsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_processed_total",
		Help:      "Total number of leads processed by the intake workers, by result.",
	},
	[]string{"result"},
)

// LeadQueueDepth tracks the number of leads waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LeadQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "lead_queue_depth",
		Help:      "Current number of leads pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
