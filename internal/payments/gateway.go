package payments

import (
	"context"
	"errors"
)

// Supported payment methods.
const (
	MethodDebit  = "debit"
	MethodCredit = "credit"
	MethodUPI    = "upi"
)

var (
	ErrPaymentDeclined = errors.New("payment declined")
	ErrInvalidMethod   = errors.New("invalid payment method")
)

// SettleRequest carries everything the gateway needs to take a payment.
type SettleRequest struct {
	BookingID string
	UserID    string
	Method    string
	Amount    float64
}

// SettleResult is the gateway's confirmation of a captured payment.
type SettleResult struct {
	TransactionID string
	Amount        float64
}

// Gateway is the payment provider boundary. The real provider would sit
// behind this; the simulated one below stands in for it.
type Gateway interface {
	Settle(ctx context.Context, req SettleRequest) (*SettleResult, error)
}

// IsValidMethod reports whether method is one we can charge.
func IsValidMethod(method string) bool {
	switch method {
	case MethodDebit, MethodCredit, MethodUPI:
		return true
	}
	return false
}
