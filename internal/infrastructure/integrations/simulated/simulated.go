// Package simulated provides integration adapters that answer like the remote
// calendar, drive, sheets, billing and notification APIs without calling them.
// They keep the HTTP contract stable until real clients replace them.
package simulated

import (
	"time"

	"github.com/google/uuid"

	"github.com/vipmudancas/mirante/internal/core/ports"
)

// newID returns a prefixed random identifier such as "evt_3f2a…".
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Options configures the simulated adapters.
type Options struct {
	// SheetsMirrorDir, when set, makes the sheets adapter persist every
	// update into <dir>/<sheet id>.xlsx.
	SheetsMirrorDir string
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// New builds the full set of simulated integration adapters.
func New(opts Options) ports.Integrations {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return ports.Integrations{
		Calendar: &Calendar{now: now},
		Drive:    &Drive{now: now},
		Sheets:   NewSheets(opts.SheetsMirrorDir, now),
		Billing:  &Billing{},
		Notifier: &Notifier{now: now},
	}
}
