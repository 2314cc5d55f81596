package chain

import "context"

// BlockNumberer is implemented by *ethclient.Client.
type BlockNumberer interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// HealthCheck implements ports.HealthChecker for the chain node.
type HealthCheck struct {
	client BlockNumberer
}

// NewHealthCheck creates a chain node health checker.
func NewHealthCheck(client BlockNumberer) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping asks the node for its head block.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.client.BlockNumber(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "chain"
}
