package calls

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

// CallResult holds the result of initiating a call.
type CallResult struct {
	CallID    string
	Status    string
	StartedAt time.Time
}

// CallProvider abstracts the telephony backend used to place outreach calls.
type CallProvider interface {
	InitiateCall(ctx context.Context, from, to string) (*CallResult, error)
}

// SimulatedProvider stands in for a telephony integration. It logs the call
// and returns a synthetic call ID, which keeps the full outreach flow usable
// without a telephony account.
type SimulatedProvider struct {
	logger  *log.Logger
	counter atomic.Int64
}

// NewSimulatedProvider creates a simulated call provider.
func NewSimulatedProvider(logger *log.Logger) *SimulatedProvider {
	if logger == nil {
		logger = log.Default()
	}
	return &SimulatedProvider{logger: logger}
}

// InitiateCall pretends to place a call.
func (p *SimulatedProvider) InitiateCall(_ context.Context, from, to string) (*CallResult, error) {
	id := p.counter.Add(1)
	p.logger.Printf("📞 [CALL] Simulated call from %s to %s", from, to)

	return &CallResult{
		CallID:    fmt.Sprintf("SIM%08d", id),
		Status:    "initiated",
		StartedAt: time.Now(),
	}, nil
}
