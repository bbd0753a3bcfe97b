package filestore

import (
	"context"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type FlightStore struct {
	collection
}

func NewFlightStore(path string) *FlightStore {
	return &FlightStore{collection: collection{path: path}}
}

func (s *FlightStore) List(ctx context.Context) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[domain.Flight](s.path)
}

func (s *FlightStore) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range flights {
		if flights[i].ID == id {
			return &flights[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *FlightStore) Insert(ctx context.Context, input store.NewFlight) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := readAll[domain.Flight](s.path)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for i := range flights {
		if flights[i].ID > maxID {
			maxID = flights[i].ID
		}
	}

	flight := domain.Flight{
		ID:            s.claimID(maxID),
		FlightNumber:  input.FlightNumber,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Capacity:      input.Capacity,
		BookedSeats:   input.BookedSeats,
		Status:        input.Status,
	}
	flights = append(flights, flight)

	if err := writeAll(s.path, flights); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (s *FlightStore) Update(ctx context.Context, id int64, patch store.FlightPatch) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := readAll[domain.Flight](s.path)
	if err != nil {
		return nil, err
	}

	for i := range flights {
		if flights[i].ID != id {
			continue
		}
		if patch.IsEmpty() {
			f := flights[i]
			return &f, nil
		}
		flights[i] = mergeFlight(flights[i], patch)
		if err := writeAll(s.path, flights); err != nil {
			return nil, err
		}
		f := flights[i]
		return &f, nil
	}
	return nil, store.ErrNotFound
}

func (s *FlightStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := readAll[domain.Flight](s.path)
	if err != nil {
		return false, err
	}

	kept := flights[:0]
	for i := range flights {
		if flights[i].ID != id {
			kept = append(kept, flights[i])
		}
	}
	if len(kept) == len(flights) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

func mergeFlight(f domain.Flight, patch store.FlightPatch) domain.Flight {
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
	return f
}

var _ store.FlightStore = (*FlightStore)(nil)
