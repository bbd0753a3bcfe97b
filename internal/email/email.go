package email

import (
	"context"
	"fmt"

	"github.com/okunev/flightdesk/internal/service/booking"
)

// Sender renders booking event notifications. The transport is stdout for
// now; the worker only depends on Send.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event booking.BookingEvent) error {
	fmt.Printf("notify passenger %d: %s (flight %d, reference %s)\n",
		event.PassengerID, event.Type, event.FlightID, event.Reference)
	return nil
}
