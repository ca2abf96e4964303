// Package pricing computes booking totals. Pricing is flat per showtime:
// every seat costs the showtime's base price.
package pricing

import "errors"

// FallbackBasePrice is used when a showtime carries no price of its own.
const FallbackBasePrice = 250.0

var ErrInvalidSeatCount = errors.New("seat count must be positive")

// Total returns the amount due for seatCount seats at basePrice each.
// A basePrice of zero falls back to the default ticket price.
func Total(basePrice float64, seatCount int) (float64, error) {
	if seatCount <= 0 {
		return 0, ErrInvalidSeatCount
	}
	if basePrice <= 0 {
		basePrice = FallbackBasePrice
	}
	return basePrice * float64(seatCount), nil
}
