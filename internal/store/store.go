// Package store defines the persistence contract for each entity collection.
// A store owns the durable copy of one collection; callers get value
// snapshots back, never shared references. Lookups that miss return
// ErrNotFound, which is a normal outcome, not a storage failure.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/okunev/flightdesk/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type FlightStore interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Insert(ctx context.Context, input NewFlight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, patch FlightPatch) (*domain.Flight, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

type SeatStore interface {
	List(ctx context.Context) ([]domain.Seat, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error)
	GetByID(ctx context.Context, id int64) (*domain.Seat, error)
	// FindByFlightAndNumber locates a seat by its (flight, seat number) pair,
	// the identity the reservation flow works with.
	FindByFlightAndNumber(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error)
	Insert(ctx context.Context, input NewSeat) (*domain.Seat, error)
	Update(ctx context.Context, id int64, patch SeatPatch) (*domain.Seat, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

type PassengerStore interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Insert(ctx context.Context, input NewPassenger) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, patch PassengerPatch) (*domain.Passenger, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// BookingStore has no Update: bookings are immutable once created and
// cancellation removes the record outright.
type BookingStore interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Insert(ctx context.Context, input NewBooking) (*domain.Booking, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

// NewFlight carries every flight attribute except the id, which the store
// assigns.
type NewFlight struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Capacity      int
	BookedSeats   int
	Status        domain.FlightStatus
}

type NewSeat struct {
	SeatNumber string
	SeatType   domain.SeatType
	FlightID   int64
}

type NewPassenger struct {
	Name           string
	Age            int
	PassportNumber string
}

type NewBooking struct {
	FlightID    int64
	PassengerID int64
	Reference   string
	BookedAt    time.Time
}

// FlightPatch is a partial update: nil fields keep their stored value. An
// empty patch is the "no changes" outcome and must not rewrite the
// collection.
type FlightPatch struct {
	FlightNumber  *string
	Origin        *string
	Destination   *string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	Capacity      *int
	BookedSeats   *int
	Status        *domain.FlightStatus
}

func (p FlightPatch) IsEmpty() bool {
	return p.FlightNumber == nil && p.Origin == nil && p.Destination == nil &&
		p.DepartureTime == nil && p.ArrivalTime == nil && p.Capacity == nil &&
		p.BookedSeats == nil && p.Status == nil
}

// SeatPatch follows the seat invariant: setting IsReserved to true requires
// ReservedBy, setting it to false clears ReservedBy regardless of the
// supplied value.
type SeatPatch struct {
	SeatNumber *string
	SeatType   *domain.SeatType
	IsReserved *bool
	ReservedBy *int64
}

func (p SeatPatch) IsEmpty() bool {
	return p.SeatNumber == nil && p.SeatType == nil && p.IsReserved == nil && p.ReservedBy == nil
}

type PassengerPatch struct {
	Name           *string
	Age            *int
	PassportNumber *string
}

func (p PassengerPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.PassportNumber == nil
}
