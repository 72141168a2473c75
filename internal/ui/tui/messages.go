package tui

import "github.com/Saxenaa218/currency-conversion-test/internal/domain"

// refreshMsg asks the model to start a new detection run.
type refreshMsg struct {
	reason string
}

type detectDoneMsg struct {
	token  uint64
	report domain.DetectionReport
}

type prefsChangedMsg struct{}

type watchFailedMsg struct {
	err error
}
