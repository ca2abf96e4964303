package seatmap

import "math/rand"

const (
	// Hot seats are a random 15-25% slice of the currently available seats,
	// surfaced as a soft "filling fast" hint. They are advisory only and are
	// never stored.
	hotSeatMinPct = 0.15
	hotSeatMaxPct = 0.25
)

// Availability materializes the layout with per-seat booked flags for one
// showtime. Labels in booked that don't exist in the layout are ignored.
func Availability(booked []string) [][]SeatState {
	bookedSet := make(map[string]bool, len(booked))
	for _, label := range booked {
		bookedSet[label] = true
	}

	layout := Layout()
	grid := make([][]SeatState, 0, len(layout))
	for _, row := range layout {
		states := make([]SeatState, 0, len(row))
		for _, seat := range row {
			states = append(states, SeatState{
				Seat:   seat,
				Booked: bookedSet[seat.Label],
			})
		}
		grid = append(grid, states)
	}
	return grid
}

// HotSeats picks the advisory hot set from the seats still available given
// the booked labels. The result is recomputed on every call; two calls with
// the same inputs will generally disagree, and that is fine.
func HotSeats(booked []string, rng *rand.Rand) []string {
	bookedSet := make(map[string]bool, len(booked))
	for _, label := range booked {
		bookedSet[label] = true
	}

	available := make([]string, 0, TotalSeats)
	for _, label := range AllLabels() {
		if !bookedSet[label] {
			available = append(available, label)
		}
	}
	if len(available) == 0 {
		return nil
	}

	minCount := int(float64(len(available)) * hotSeatMinPct)
	maxCount := int(float64(len(available)) * hotSeatMaxPct)
	if minCount < 1 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}

	count := minCount
	if maxCount > minCount {
		count = minCount + rng.Intn(maxCount-minCount+1)
	}

	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	return available[:count]
}

// MarkHot flags the given labels as hot in an availability grid. Booked
// seats are never marked.
func MarkHot(grid [][]SeatState, hot []string) {
	hotSet := make(map[string]bool, len(hot))
	for _, label := range hot {
		hotSet[label] = true
	}
	for i := range grid {
		for j := range grid[i] {
			if hotSet[grid[i][j].Label] && !grid[i][j].Booked {
				grid[i][j].Hot = true
			}
		}
	}
}
