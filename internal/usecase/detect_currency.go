package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// DetectCurrency runs every probe once and reconciles their outcomes.
type DetectCurrency struct {
	probes     map[domain.Method]ports.Probe
	concurrent bool
	log        *slog.Logger
	now        func() time.Time
}

type DetectOption func(*DetectCurrency)

// WithSequential runs the probes one after another in method order.
func WithSequential(sequential bool) DetectOption {
	return func(uc *DetectCurrency) { uc.concurrent = !sequential }
}

func WithLogger(l *slog.Logger) DetectOption {
	return func(uc *DetectCurrency) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) DetectOption {
	return func(uc *DetectCurrency) { uc.now = now }
}

// NewDetectCurrency indexes probes by method. A method with no probe is
// reported as failed; a later probe for the same method replaces an
// earlier one.
func NewDetectCurrency(probes []ports.Probe, opts ...DetectOption) *DetectCurrency {
	uc := &DetectCurrency{
		probes:     make(map[domain.Method]ports.Probe, len(probes)),
		concurrent: true,
		log:        slog.New(slog.DiscardHandler),
		now:        time.Now,
	}
	for _, p := range probes {
		if p != nil {
			uc.probes[p.Method()] = p
		}
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute never fails: every probe problem ends up in the report. A
// cancelled ctx makes the remaining probes fail fast.
func (uc *DetectCurrency) Execute(ctx context.Context) domain.DetectionReport {
	methods := domain.Methods()
	outcomes := make([]domain.ProbeOutcome, len(methods))
	log := uc.log.With("run_id", uuid.NewString())

	started := uc.now()
	log.Info("detect.started", "concurrent", uc.concurrent, "probes", len(uc.probes))

	if uc.concurrent {
		var g errgroup.Group
		for i, m := range methods {
			g.Go(func() error {
				outcomes[i] = uc.runProbe(ctx, log, m)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, m := range methods {
			outcomes[i] = uc.runProbe(ctx, log, m)
		}
	}

	report := domain.NewReport(outcomes)
	report.StartedAt = started
	report.EndedAt = uc.now()

	log.Info("detect.reconciled",
		"country", report.Country,
		"currency", report.Currency,
		"succeeded", report.Succeeded(),
		"duration_ms", report.EndedAt.Sub(report.StartedAt).Milliseconds(),
	)
	return report
}

func (uc *DetectCurrency) runProbe(ctx context.Context, log *slog.Logger, m domain.Method) (out domain.ProbeOutcome) {
	p, ok := uc.probes[m]
	if !ok {
		return domain.Failed(m, "probe not configured", nil)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic.recovered", "method", string(m), "panic", fmt.Sprint(r))
			out = domain.Failed(m, fmt.Sprintf("probe panicked: %v", r), nil)
		}
		out.Method = m
		out.Elapsed = time.Since(start)
		log.Debug("probe.finished",
			"method", string(m),
			"ok", out.OK(),
			"country", string(out.Country()),
			"currency", string(out.Currency()),
			"reason", out.Reason(),
			"elapsed_ms", out.Elapsed.Milliseconds(),
		)
	}()

	if err := ctx.Err(); err != nil {
		return domain.Failed(m, "detection cancelled", nil)
	}
	return p.Detect(ctx)
}
