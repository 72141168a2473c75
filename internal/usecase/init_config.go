package usecase

import (
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// InitConfig writes the starter currency-detect.yaml into a directory.
type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(root string, force bool) (ports.InitResult, error) {
	return uc.initializer.Init(root, force)
}
