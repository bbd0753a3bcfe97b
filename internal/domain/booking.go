package domain

import "time"

// Booking links one passenger to one flight. It is immutable once created:
// cancellation removes the record, it is never flipped to a cancelled state.
// Reference is an opaque confirmation token handed to the passenger and used
// as the key for published booking events.
type Booking struct {
	ID          int64     `json:"id"`
	FlightID    int64     `json:"flightId"`
	PassengerID int64     `json:"passengerId"`
	Reference   string    `json:"reference"`
	BookedAt    time.Time `json:"bookedAt"`
}
