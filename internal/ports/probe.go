package ports

import (
	"context"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// Probe is one independent detection method. Detect never returns an error:
// failures are reported inside the outcome.
type Probe interface {
	Method() domain.Method
	Detect(ctx context.Context) domain.ProbeOutcome
}
