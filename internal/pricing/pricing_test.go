package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	total, err := Total(250, 3)
	require.NoError(t, err)
	assert.Equal(t, 750.0, total)

	total, err = Total(180.50, 2)
	require.NoError(t, err)
	assert.Equal(t, 361.0, total)
}

func TestTotalRejectsNonPositiveSeatCount(t *testing.T) {
	_, err := Total(250, 0)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)

	_, err = Total(250, -1)
	assert.ErrorIs(t, err, ErrInvalidSeatCount)
}

func TestTotalFallbackPrice(t *testing.T) {
	total, err := Total(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 500.0, total)
}
