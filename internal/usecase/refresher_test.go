package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

type detectorFunc func(ctx context.Context) domain.DetectionReport

func (f detectorFunc) Execute(ctx context.Context) domain.DetectionReport { return f(ctx) }

func TestRefresher_StaleRunIsDiscarded(t *testing.T) {
	r := NewRefresher()

	first, firstCtx := r.Start(context.Background())
	second, _ := r.Start(context.Background())

	if second <= first {
		t.Fatalf("expected increasing tokens, got %d then %d", first, second)
	}
	select {
	case <-firstCtx.Done():
	default:
		t.Fatalf("expected the superseded run to be cancelled")
	}
	if r.Commit(first) {
		t.Fatalf("expected stale token to be rejected")
	}
	if !r.Commit(second) {
		t.Fatalf("expected latest token to commit")
	}
	if r.Latest() != second {
		t.Fatalf("expected latest=%d, got %d", second, r.Latest())
	}
}

func TestRefresher_RunSupersededMidFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRefresher()
	started := make(chan struct{})
	slow := detectorFunc(func(ctx context.Context) domain.DetectionReport {
		close(started)
		<-ctx.Done()
		return domain.NewReport(nil)
	})
	fast := detectorFunc(func(context.Context) domain.DetectionReport {
		return domain.NewReport([]domain.ProbeOutcome{
			domain.Succeeded(domain.MethodTimezone, "FR", "EUR", nil),
		})
	})

	type result struct {
		report domain.DetectionReport
		ok     bool
	}
	slowDone := make(chan result, 1)
	go func() {
		rep, ok := r.Run(context.Background(), slow)
		slowDone <- result{rep, ok}
	}()
	<-started

	rep, ok := r.Run(context.Background(), fast)
	if !ok || rep.Country != "FR" {
		t.Fatalf("expected fresh run to commit FR, got %s ok=%v", rep.Country, ok)
	}

	select {
	case res := <-slowDone:
		if res.ok {
			t.Fatalf("expected superseded run to be discarded")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("superseded run was never cancelled")
	}
}

func TestRefresher_Stop(t *testing.T) {
	r := NewRefresher()
	token, ctx := r.Start(context.Background())
	r.Stop()

	if ctx.Err() == nil {
		t.Fatalf("expected Stop to cancel the run")
	}
	if r.Commit(token) {
		t.Fatalf("expected stopped run not to commit")
	}
}
