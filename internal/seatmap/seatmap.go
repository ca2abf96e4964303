// Package seatmap describes the fixed auditorium layout every screen shares
// and the seat-label rules built on top of it.
package seatmap

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// Rows are labeled A through J, front to back.
	Rows = "ABCDEFGHIJ"
	// SeatsPerRow is the number of seats in every row.
	SeatsPerRow = 14
	// TotalSeats is the auditorium capacity.
	TotalSeats = len(Rows) * SeatsPerRow
)

// aisleAfter holds the 0-based column indices followed by an aisle gap.
// The walkways split each row into blocks of 4, 7 and 3 seats.
var aisleAfter = map[int]bool{3: true, 10: true}

var ErrInvalidSeatLabel = errors.New("invalid seat label")

// Seat is one position in the layout.
type Seat struct {
	Label      string `json:"label"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	AisleAfter bool   `json:"aisle_after"`
}

// SeatState is a seat together with its availability for one showtime.
type SeatState struct {
	Seat
	Booked bool `json:"booked"`
	Hot    bool `json:"hot"`
}

// Layout returns the full seat grid, row by row.
func Layout() [][]Seat {
	grid := make([][]Seat, 0, len(Rows))
	for _, r := range Rows {
		row := make([]Seat, 0, SeatsPerRow)
		for n := 1; n <= SeatsPerRow; n++ {
			row = append(row, Seat{
				Label:      fmt.Sprintf("%c%d", r, n),
				Row:        string(r),
				Number:     n,
				AisleAfter: aisleAfter[n-1],
			})
		}
		grid = append(grid, row)
	}
	return grid
}

// AllLabels returns every valid seat label in layout order.
func AllLabels() []string {
	labels := make([]string, 0, TotalSeats)
	for _, r := range Rows {
		for n := 1; n <= SeatsPerRow; n++ {
			labels = append(labels, fmt.Sprintf("%c%d", r, n))
		}
	}
	return labels
}

// ParseLabel splits a label like "C12" into its row letter and seat number.
// Labels are case-sensitive: rows are upper-case letters only.
func ParseLabel(label string) (row string, number int, err error) {
	if len(label) < 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	r := label[0]
	if r < 'A' || r > Rows[len(Rows)-1] {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	n, convErr := strconv.Atoi(label[1:])
	if convErr != nil || n < 1 || n > SeatsPerRow {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}

	return string(r), n, nil
}

// IsValidLabel reports whether label names a seat in the layout.
func IsValidLabel(label string) bool {
	_, _, err := ParseLabel(label)
	return err == nil
}

// ValidateLabels rejects the whole selection if any label is unknown or
// repeated within it.
func ValidateLabels(labels []string) error {
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if !IsValidLabel(label) {
			return fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
		}
		if seen[label] {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidSeatLabel, label)
		}
		seen[label] = true
	}
	return nil
}
