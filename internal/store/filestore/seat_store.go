package filestore

import (
	"context"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type SeatStore struct {
	collection
}

func NewSeatStore(path string) *SeatStore {
	return &SeatStore{collection: collection{path: path}}
}

func (s *SeatStore) List(ctx context.Context) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[domain.Seat](s.path)
}

func (s *SeatStore) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	seats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Seat, 0)
	for i := range seats {
		if seats[i].FlightID != nil && *seats[i].FlightID == flightID {
			matched = append(matched, seats[i])
		}
	}
	return matched, nil
}

func (s *SeatStore) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	seats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range seats {
		if seats[i].ID == id {
			return &seats[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) FindByFlightAndNumber(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error) {
	seats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range seats {
		if seats[i].SeatNumber == seatNumber && seats[i].FlightID != nil && *seats[i].FlightID == flightID {
			return &seats[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) Insert(ctx context.Context, input store.NewSeat) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats, err := readAll[domain.Seat](s.path)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for i := range seats {
		if seats[i].ID > maxID {
			maxID = seats[i].ID
		}
	}

	flightID := input.FlightID
	seat := domain.Seat{
		ID:         s.claimID(maxID),
		SeatNumber: input.SeatNumber,
		SeatType:   input.SeatType,
		FlightID:   &flightID,
	}
	seats = append(seats, seat)

	if err := writeAll(s.path, seats); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *SeatStore) Update(ctx context.Context, id int64, patch store.SeatPatch) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats, err := readAll[domain.Seat](s.path)
	if err != nil {
		return nil, err
	}

	for i := range seats {
		if seats[i].ID != id {
			continue
		}
		if patch.IsEmpty() {
			seat := seats[i]
			return &seat, nil
		}
		seats[i] = mergeSeat(seats[i], patch)
		if err := writeAll(s.path, seats); err != nil {
			return nil, err
		}
		seat := seats[i]
		return &seat, nil
	}
	return nil, store.ErrNotFound
}

func (s *SeatStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats, err := readAll[domain.Seat](s.path)
	if err != nil {
		return false, err
	}

	kept := seats[:0]
	for i := range seats {
		if seats[i].ID != id {
			kept = append(kept, seats[i])
		}
	}
	if len(kept) == len(seats) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

// mergeSeat keeps the reservation invariant: releasing clears ReservedBy
// even when the patch does not mention it.
func mergeSeat(seat domain.Seat, patch store.SeatPatch) domain.Seat {
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
	return seat
}

var _ store.SeatStore = (*SeatStore)(nil)
