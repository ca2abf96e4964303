package notifications

import (
	"context"

	"cinegold/pkg/logger"
)

// TicketDispatcher turns booking events into user-facing notifications.
// The current implementation only logs; a mail or push integration would
// replace the dispatch step.
type TicketDispatcher struct {
	logger *logger.Logger
}

func NewTicketDispatcher() *TicketDispatcher {
	return &TicketDispatcher{logger: logger.GetDefault()}
}

// Handle implements EventHandler.
func (d *TicketDispatcher) Handle(ctx context.Context, event BookingEvent) error {
	switch event.Type {
	case EventBookingConfirmed:
		d.logger.Info("dispatching ticket",
			"booking_id", event.BookingID,
			"user_id", event.UserID,
			"seats", event.Seats,
			"amount", event.Amount)
	case EventBookingFailed:
		d.logger.Info("dispatching failure notice",
			"booking_id", event.BookingID,
			"user_id", event.UserID)
	default:
		d.logger.Debug("ignoring booking event", "type", event.Type)
	}
	return nil
}
