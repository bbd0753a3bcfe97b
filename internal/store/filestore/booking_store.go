package filestore

import (
	"context"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type BookingStore struct {
	collection
}

func NewBookingStore(path string) *BookingStore {
	return &BookingStore{collection: collection{path: path}}
}

func (s *BookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[domain.Booking](s.path)
}

func (s *BookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *BookingStore) Insert(ctx context.Context, input store.NewBooking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[domain.Booking](s.path)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for i := range bookings {
		if bookings[i].ID > maxID {
			maxID = bookings[i].ID
		}
	}

	booking := domain.Booking{
		ID:          s.claimID(maxID),
		FlightID:    input.FlightID,
		PassengerID: input.PassengerID,
		Reference:   input.Reference,
		BookedAt:    input.BookedAt,
	}
	bookings = append(bookings, booking)

	if err := writeAll(s.path, bookings); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *BookingStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := readAll[domain.Booking](s.path)
	if err != nil {
		return false, err
	}

	kept := bookings[:0]
	for i := range bookings {
		if bookings[i].ID != id {
			kept = append(kept, bookings[i])
		}
	}
	if len(kept) == len(bookings) {
		return false, nil
	}
	if err := writeAll(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}

var _ store.BookingStore = (*BookingStore)(nil)
