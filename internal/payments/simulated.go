package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeclineFunc lets callers decide per-request whether the simulated gateway
// declines. A nil DeclineFunc approves everything.
type DeclineFunc func(req SettleRequest) bool

type simulatedGateway struct {
	settleDelay time.Duration
	decline     DeclineFunc
}

// NewSimulatedGateway returns a gateway that sleeps for settleDelay to mimic
// provider latency, then approves or declines per the decline hook.
func NewSimulatedGateway(settleDelay time.Duration, decline DeclineFunc) Gateway {
	return &simulatedGateway{
		settleDelay: settleDelay,
		decline:     decline,
	}
}

func (g *simulatedGateway) Settle(ctx context.Context, req SettleRequest) (*SettleResult, error) {
	if !IsValidMethod(req.Method) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: non-positive amount", ErrPaymentDeclined)
	}

	if g.settleDelay > 0 {
		select {
		case <-time.After(g.settleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if g.decline != nil && g.decline(req) {
		return nil, ErrPaymentDeclined
	}

	return &SettleResult{
		TransactionID: "TXN-" + uuid.New().String(),
		Amount:        req.Amount,
	}, nil
}
