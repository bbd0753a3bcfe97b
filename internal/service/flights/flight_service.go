// Package flights covers single-flight administration: CRUD plus the
// operational verbs (delay, status changes, boarding). Anything that touches
// another collection belongs to the booking engine, not here.
package flights

import (
	"context"
	"errors"
	"time"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrTerminalStatus = errors.New("flight status is terminal")
	ErrFlightFull     = errors.New("flight has no available seats")
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input store.NewFlight) (*domain.Flight, error)
	Update(ctx context.Context, id int64, patch store.FlightPatch) (*domain.Flight, error)
	Remove(ctx context.Context, id int64) (bool, error)
	Delay(ctx context.Context, id int64, minutes int) (*domain.Flight, error)
	SetStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error)
	Cancel(ctx context.Context, id int64) (*domain.Flight, error)
	BoardPassenger(ctx context.Context, id int64) (*domain.Flight, error)
	DepartingSoon(ctx context.Context) ([]domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo       store.FlightStore
	cache      Cache // nil disables caching
	soonWindow time.Duration
}

type FlightServiceOption func(*FlightService)

func WithCache(cache Cache) FlightServiceOption {
	return func(s *FlightService) { s.cache = cache }
}

// WithDepartingSoonWindow overrides the default one-hour horizon.
func WithDepartingSoonWindow(window time.Duration) FlightServiceOption {
	return func(s *FlightService) { s.soonWindow = window }
}

func NewFlightService(repo store.FlightStore, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	return flight, err
}

func (s *FlightService) Create(ctx context.Context, input store.NewFlight) (*domain.Flight, error) {
	flight, err := s.repo.Insert(ctx, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, patch store.FlightPatch) (*domain.Flight, error) {
	flight, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.invalidate(ctx)
	}
	return removed, nil
}

func (s *FlightService) Delay(ctx context.Context, id int64, minutes int) (*domain.Flight, error) {
	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flight.Delay(minutes)
	return s.Update(ctx, id, store.FlightPatch{
		DepartureTime: &flight.DepartureTime,
		ArrivalTime:   &flight.ArrivalTime,
	})
}

func (s *FlightService) SetStatus(ctx context.Context, id int64, status domain.FlightStatus) (*domain.Flight, error) {
	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !flight.SetStatus(status) {
		return nil, ErrTerminalStatus
	}
	return s.Update(ctx, id, store.FlightPatch{Status: &flight.Status})
}

func (s *FlightService) Cancel(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !flight.Cancel() {
		return nil, ErrTerminalStatus
	}
	return s.Update(ctx, id, store.FlightPatch{Status: &flight.Status})
}

// BoardPassenger increments the booked-seat count through the boarding verb.
// It does not create a booking record; boarding is counted against capacity
// only.
func (s *FlightService) BoardPassenger(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !flight.BoardPassenger() {
		if flight.IsFull() {
			return nil, ErrFlightFull
		}
		return nil, ErrTerminalStatus
	}
	return s.Update(ctx, id, store.FlightPatch{BookedSeats: &flight.BookedSeats})
}

func (s *FlightService) DepartingSoon(ctx context.Context) ([]domain.Flight, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	soon := make([]domain.Flight, 0)
	for _, f := range flights {
		if f.IsDepartingSoon(now, s.soonWindow) {
			soon = append(soon, f)
		}
	}
	return soon, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
