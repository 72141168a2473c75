package tui

import (
	"context"
	"log/slog"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

type Deps struct {
	Detector usecase.Detector
	Tables   *domain.ReferenceTables
	Host     hostlocale.Snapshot

	// WatchPrefs blocks until ctx is done, calling onChange whenever the
	// stored preference changes. Nil disables auto-refresh.
	WatchPrefs func(ctx context.Context, onChange func()) error

	ConfigPath string
	Logger     *slog.Logger
	Debug      bool
}
