package usecase

import (
	"context"
	"sync"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// Detector is satisfied by *DetectCurrency.
type Detector interface {
	Execute(ctx context.Context) domain.DetectionReport
}

// Refresher serialises re-runs of the cascade. Each Start hands out a
// larger token and cancels the run before it; only the newest token can
// Commit.
type Refresher struct {
	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

func NewRefresher() *Refresher {
	return &Refresher{}
}

// Start begins a new run derived from parent.
func (r *Refresher) Start(parent context.Context) (uint64, context.Context) {
	ctx, cancel := context.WithCancel(parent)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	r.latest++
	r.cancel = cancel
	return r.latest, ctx
}

// Commit reports whether token still belongs to the newest run. A
// successful commit releases that run's context.
func (r *Refresher) Commit(token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.latest {
		return false
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	return true
}

// Latest is the token of the newest run, 0 before the first Start.
func (r *Refresher) Latest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Stop cancels the in-flight run, if any. Its token can no longer commit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.latest++
}

// Run starts a run, executes d, and returns the report with ok=false when
// a newer run superseded it.
func (r *Refresher) Run(parent context.Context, d Detector) (domain.DetectionReport, bool) {
	token, ctx := r.Start(parent)
	report := d.Execute(ctx)
	return report, r.Commit(token)
}
