package filestore

import (
	"context"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type PassengerStore struct {
	collection
}

func NewPassengerStore(path string) *PassengerStore {
	return &PassengerStore{collection: collection{path: path}}
}

func (s *PassengerStore) List(ctx context.Context) ([]domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[domain.Passenger](s.path)
}

func (s *PassengerStore) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	passengers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range passengers {
		if passengers[i].ID == id {
			return &passengers[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *PassengerStore) Insert(ctx context.Context, input store.NewPassenger) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passengers, err := readAll[domain.Passenger](s.path)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for i := range passengers {
		if passengers[i].ID > maxID {
			maxID = passengers[i].ID
		}
	}

	passenger := domain.Passenger{
		ID:             s.claimID(maxID),
		Name:           input.Name,
		Age:            input.Age,
		PassportNumber: input.PassportNumber,
	}
	passengers = append(passengers, passenger)

	if err := writeAll(s.path, passengers); err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (s *PassengerStore) Update(ctx context.Context, id int64, patch store.PassengerPatch) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passengers, err := readAll[domain.Passenger](s.path)
	if err != nil {
		return nil, err
	}

	for i := range passengers {
		if passengers[i].ID != id {
			continue
		}
		if patch.IsEmpty() {
			p := passengers[i]
			return &p, nil
		}
		if patch.Name != nil {
			passengers[i].Name = *patch.Name
		}
		if patch.Age != nil {
			passengers[i].Age = *patch.Age
		}
		if patch.PassportNumber != nil {
			passengers[i].PassportNumber = *patch.PassportNumber
		}
		if err := writeAll(s.path, passengers); err != nil {
			return nil, err
		}
		p := passengers[i]
		return &p, nil
	}
	return nil, store.ErrNotFound
}

func (s *PassengerStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passengers, err := readAll[domain.Passenger](s.path)
	if err != nil {
		return false, err
	}

	kept := passengers[:0]
	for i := range passengers {
		if passengers[i].ID != id {
			kept = append(kept, passengers[i])
		}
	}
	if len(kept) == len(passengers) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

var _ store.PassengerStore = (*PassengerStore)(nil)
