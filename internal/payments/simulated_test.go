package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewaySettle(t *testing.T) {
	gw := NewSimulatedGateway(0, nil)

	result, err := gw.Settle(context.Background(), SettleRequest{
		BookingID: "b-1",
		Method:    MethodUPI,
		Amount:    750,
	})
	require.NoError(t, err)
	assert.Equal(t, 750.0, result.Amount)
	assert.NotEmpty(t, result.TransactionID)
}

func TestSimulatedGatewayDecline(t *testing.T) {
	gw := NewSimulatedGateway(0, func(req SettleRequest) bool { return true })

	_, err := gw.Settle(context.Background(), SettleRequest{
		Method: MethodCredit,
		Amount: 100,
	})
	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestSimulatedGatewayInvalidMethod(t *testing.T) {
	gw := NewSimulatedGateway(0, nil)

	_, err := gw.Settle(context.Background(), SettleRequest{
		Method: "cash",
		Amount: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestSimulatedGatewayContextCancellation(t *testing.T) {
	gw := NewSimulatedGateway(time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Settle(ctx, SettleRequest{
		Method: MethodDebit,
		Amount: 100,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsValidMethod(t *testing.T) {
	assert.True(t, IsValidMethod(MethodDebit))
	assert.True(t, IsValidMethod(MethodCredit))
	assert.True(t, IsValidMethod(MethodUPI))
	assert.False(t, IsValidMethod("wire"))
	assert.False(t, IsValidMethod(""))
}
