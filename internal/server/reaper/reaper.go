// Package reaper runs the periodic sweep that reclaims expired entries from
// the in-memory registries. Sweeping is a memory optimization only: every
// registry lookup re-checks expiry itself.
package reaper

import (
	"context"
	"time"

	"github.com/ndmitriev/gatekeeper/internal/logging"
)

// Sweepable is anything holding time-bounded entries that can be reclaimed.
type Sweepable interface {
	Sweep(now time.Time)
}

type Reaper struct {
	interval time.Duration
	targets  []Sweepable
	logger   logging.Logger
}

func New(interval time.Duration, logger logging.Logger, targets ...Sweepable) *Reaper {
	return &Reaper{
		interval: interval,
		targets:  targets,
		logger:   logger.With("module", "reaper"),
	}
}

// Run sweeps all targets every interval until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info(ctx, "Starting expiry reaper", "interval", r.interval.String())

	for {
		select {
		case now := <-ticker.C:
			for _, t := range r.targets {
				t.Sweep(now)
			}
		case <-ctx.Done():
			r.logger.Info(ctx, "Stopping expiry reaper...")
			return
		}
	}
}
