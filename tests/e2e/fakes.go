//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"booking-checkout/internal/usecase/shared"
)

// FakeGateway records session requests instead of calling the payment provider.
type FakeGateway struct {
	mu     sync.Mutex
	inputs []shared.SessionInput
	err    error
}

func (g *FakeGateway) CreateSession(_ context.Context, in shared.SessionInput) (*shared.SessionResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}
	g.inputs = append(g.inputs, in)
	id := fmt.Sprintf("cs_test_e2e_%d", len(g.inputs))
	return &shared.SessionResult{ID: id, URL: "https://checkout.stripe.test/pay/" + id}, nil
}

func (g *FakeGateway) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

func (g *FakeGateway) Last() (shared.SessionInput, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.inputs) == 0 {
		return shared.SessionInput{}, false
	}
	return g.inputs[len(g.inputs)-1], true
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs = nil
	g.err = nil
}
