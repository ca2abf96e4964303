package seatmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutShape(t *testing.T) {
	grid := Layout()

	require.Len(t, grid, 10)
	for _, row := range grid {
		assert.Len(t, row, 14)
	}

	assert.Equal(t, "A1", grid[0][0].Label)
	assert.Equal(t, "J14", grid[9][13].Label)
	assert.Equal(t, 140, TotalSeats)
}

func TestLayoutAisles(t *testing.T) {
	grid := Layout()

	for _, row := range grid {
		for _, seat := range row {
			switch seat.Number {
			case 4, 11:
				assert.True(t, seat.AisleAfter, "expected aisle after %s", seat.Label)
			default:
				assert.False(t, seat.AisleAfter, "unexpected aisle after %s", seat.Label)
			}
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label   string
		row     string
		number  int
		wantErr bool
	}{
		{label: "A1", row: "A", number: 1},
		{label: "J14", row: "J", number: 14},
		{label: "E7", row: "E", number: 7},
		{label: "K1", wantErr: true},
		{label: "A15", wantErr: true},
		{label: "A0", wantErr: true},
		{label: "a1", wantErr: true},
		{label: "A", wantErr: true},
		{label: "", wantErr: true},
		{label: "1A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			row, number, err := ParseLabel(tt.label)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSeatLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestValidateLabels(t *testing.T) {
	assert.NoError(t, ValidateLabels([]string{"A1", "A2", "J14"}))
	assert.ErrorIs(t, ValidateLabels([]string{"A1", "K1"}), ErrInvalidSeatLabel)
	assert.ErrorIs(t, ValidateLabels([]string{"A1", "A1"}), ErrInvalidSeatLabel)
	assert.NoError(t, ValidateLabels(nil))
}

func TestAvailability(t *testing.T) {
	booked := []string{"B3", "B4", "Z99"}
	grid := Availability(booked)

	bookedCount := 0
	for _, row := range grid {
		for _, seat := range row {
			if seat.Booked {
				bookedCount++
				assert.Contains(t, booked, seat.Label)
			}
		}
	}
	// Unknown labels are ignored
	assert.Equal(t, 2, bookedCount)
}

func TestHotSeatsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	booked := []string{"A1", "A2", "A3", "A4", "A5"}
	availableCount := TotalSeats - len(booked)

	for i := 0; i < 50; i++ {
		hot := HotSeats(booked, rng)

		assert.GreaterOrEqual(t, len(hot), int(float64(availableCount)*0.15))
		assert.LessOrEqual(t, len(hot), int(float64(availableCount)*0.25))

		seen := make(map[string]bool)
		for _, label := range hot {
			assert.True(t, IsValidLabel(label))
			assert.NotContains(t, booked, label, "hot seat must be available")
			assert.False(t, seen[label], "hot seats must be distinct")
			seen[label] = true
		}
	}
}

func TestHotSeatsSoldOut(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Empty(t, HotSeats(AllLabels(), rng))
}

func TestMarkHotSkipsBooked(t *testing.T) {
	grid := Availability([]string{"C5"})
	MarkHot(grid, []string{"C5", "C6"})

	for _, row := range grid {
		for _, seat := range row {
			switch seat.Label {
			case "C5":
				assert.True(t, seat.Booked)
				assert.False(t, seat.Hot)
			case "C6":
				assert.True(t, seat.Hot)
			}
		}
	}
}
