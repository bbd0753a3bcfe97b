// Package memstore is an in-memory implementation of the store interfaces,
// used by tests and ephemeral runs. It mirrors the file-backed semantics:
// value snapshots in and out, monotonic ids, per-collection locking.
package memstore

import (
	"context"
	"sync"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type Stores struct {
	Flights    *FlightStore
	Seats      *SeatStore
	Passengers *PassengerStore
	Bookings   *BookingStore
}

func New() *Stores {
	return &Stores{
		Flights:    &FlightStore{},
		Seats:      &SeatStore{},
		Passengers: &PassengerStore{},
		Bookings:   &BookingStore{},
	}
}

type FlightStore struct {
	mu      sync.Mutex
	flights []domain.Flight
	nextID  int64
}

func (s *FlightStore) List(ctx context.Context) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out, nil
}

func (s *FlightStore) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == id {
			f := s.flights[i]
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *FlightStore) Insert(ctx context.Context, input store.NewFlight) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	flight := domain.Flight{
		ID:            s.nextID,
		FlightNumber:  input.FlightNumber,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Capacity:      input.Capacity,
		BookedSeats:   input.BookedSeats,
		Status:        input.Status,
	}
	s.flights = append(s.flights, flight)
	return &flight, nil
}

func (s *FlightStore) Update(ctx context.Context, id int64, patch store.FlightPatch) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID != id {
			continue
		}
		if !patch.IsEmpty() {
			f := s.flights[i]
			if patch.FlightNumber != nil {
				f.FlightNumber = *patch.FlightNumber
			}
			if patch.Origin != nil {
				f.Origin = *patch.Origin
			}
			if patch.Destination != nil {
				f.Destination = *patch.Destination
			}
			if patch.DepartureTime != nil {
				f.DepartureTime = *patch.DepartureTime
			}
			if patch.ArrivalTime != nil {
				f.ArrivalTime = *patch.ArrivalTime
			}
			if patch.Capacity != nil {
				f.Capacity = *patch.Capacity
			}
			if patch.BookedSeats != nil {
				f.BookedSeats = *patch.BookedSeats
			}
			if patch.Status != nil {
				f.Status = *patch.Status
			}
			s.flights[i] = f
		}
		f := s.flights[i]
		return &f, nil
	}
	return nil, store.ErrNotFound
}

func (s *FlightStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.flights {
		if s.flights[i].ID == id {
			s.flights = append(s.flights[:i], s.flights[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type SeatStore struct {
	mu     sync.Mutex
	seats  []domain.Seat
	nextID int64
}

func (s *SeatStore) List(ctx context.Context) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Seat, len(s.seats))
	copy(out, s.seats)
	return out, nil
}

func (s *SeatStore) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]domain.Seat, 0)
	for i := range s.seats {
		if s.seats[i].FlightID != nil && *s.seats[i].FlightID == flightID {
			matched = append(matched, s.seats[i])
		}
	}
	return matched, nil
}

func (s *SeatStore) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seats {
		if s.seats[i].ID == id {
			seat := s.seats[i]
			return &seat, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) FindByFlightAndNumber(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seats {
		if s.seats[i].SeatNumber == seatNumber && s.seats[i].FlightID != nil && *s.seats[i].FlightID == flightID {
			seat := s.seats[i]
			return &seat, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) Insert(ctx context.Context, input store.NewSeat) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	flightID := input.FlightID
	seat := domain.Seat{
		ID:         s.nextID,
		SeatNumber: input.SeatNumber,
		SeatType:   input.SeatType,
		FlightID:   &flightID,
	}
	s.seats = append(s.seats, seat)
	return &seat, nil
}

func (s *SeatStore) Update(ctx context.Context, id int64, patch store.SeatPatch) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seats {
		if s.seats[i].ID != id {
			continue
		}
		if !patch.IsEmpty() {
			seat := s.seats[i]
			if patch.SeatNumber != nil {
				seat.SeatNumber = *patch.SeatNumber
			}
			if patch.SeatType != nil {
				seat.SeatType = *patch.SeatType
			}
			if patch.IsReserved != nil {
				seat.IsReserved = *patch.IsReserved
				if !seat.IsReserved {
					seat.ReservedBy = nil
				}
			}
			if patch.ReservedBy != nil && seat.IsReserved {
				passengerID := *patch.ReservedBy
				seat.ReservedBy = &passengerID
			}
			s.seats[i] = seat
		}
		seat := s.seats[i]
		return &seat, nil
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seats {
		if s.seats[i].ID == id {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type PassengerStore struct {
	mu         sync.Mutex
	passengers []domain.Passenger
	nextID     int64
}

func (s *PassengerStore) List(ctx context.Context) ([]domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Passenger, len(s.passengers))
	copy(out, s.passengers)
	return out, nil
}

func (s *PassengerStore) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passengers {
		if s.passengers[i].ID == id {
			p := s.passengers[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *PassengerStore) Insert(ctx context.Context, input store.NewPassenger) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	passenger := domain.Passenger{
		ID:             s.nextID,
		Name:           input.Name,
		Age:            input.Age,
		PassportNumber: input.PassportNumber,
	}
	s.passengers = append(s.passengers, passenger)
	return &passenger, nil
}

func (s *PassengerStore) Update(ctx context.Context, id int64, patch store.PassengerPatch) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passengers {
		if s.passengers[i].ID != id {
			continue
		}
		if !patch.IsEmpty() {
			if patch.Name != nil {
				s.passengers[i].Name = *patch.Name
			}
			if patch.Age != nil {
				s.passengers[i].Age = *patch.Age
			}
			if patch.PassportNumber != nil {
				s.passengers[i].PassportNumber = *patch.PassportNumber
			}
		}
		p := s.passengers[i]
		return &p, nil
	}
	return nil, store.ErrNotFound
}

func (s *PassengerStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.passengers {
		if s.passengers[i].ID == id {
			s.passengers = append(s.passengers[:i], s.passengers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type BookingStore struct {
	mu       sync.Mutex
	bookings []domain.Booking
	nextID   int64
}

func (s *BookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *BookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *BookingStore) Insert(ctx context.Context, input store.NewBooking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	booking := domain.Booking{
		ID:          s.nextID,
		FlightID:    input.FlightID,
		PassengerID: input.PassengerID,
		Reference:   input.Reference,
		BookedAt:    input.BookedAt,
	}
	s.bookings = append(s.bookings, booking)
	return &booking, nil
}

func (s *BookingStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var (
	_ store.FlightStore    = (*FlightStore)(nil)
	_ store.SeatStore      = (*SeatStore)(nil)
	_ store.PassengerStore = (*PassengerStore)(nil)
	_ store.BookingStore   = (*BookingStore)(nil)
)
