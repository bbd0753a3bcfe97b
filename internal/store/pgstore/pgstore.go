// Package pgstore implements the store interfaces on PostgreSQL via pgx.
// It is the alternative backing medium to the JSON filestore; the contract
// is identical, including the max-id+1 id assignment, which here runs inside
// the insert transaction.
package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/internal/store"
)

type Stores struct {
	Flights    *FlightStore
	Seats      *SeatStore
	Passengers *PassengerStore
	Bookings   *BookingStore
}

func New(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Flights:    &FlightStore{db: pool},
		Seats:      &SeatStore{db: pool},
		Passengers: &PassengerStore{db: pool},
		Bookings:   &BookingStore{db: pool},
	}
}

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
