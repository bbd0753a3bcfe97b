// Package booking is the reservation engine: the only component that
// coordinates flights, seats, passengers and bookings together. Each
// composite operation runs behind one mutex so its read-modify-write cycle
// never interleaves with another composite operation in this process.
package booking

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

// Expected precondition failures. Callers branch on these with errors.Is;
// anything else coming out of the engine is a storage failure.
var (
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrFlightClosed      = errors.New("flight is departed or cancelled")
	ErrFlightFull        = errors.New("flight has no available seats")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatTaken         = errors.New("seat is already reserved")
	ErrSeatNotReserved   = errors.New("seat is not reserved")
)

type BookingUseCase interface {
	BookSeat(ctx context.Context, flightID, passengerID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) error
	ReserveSeat(ctx context.Context, flightID int64, seatNumber string, passengerID int64) (*domain.Seat, error)
	ReleaseSeat(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	SummaryByPassenger(ctx context.Context, passengerID int64) (*PassengerSummary, error)
	SummaryByFlight(ctx context.Context, flightID int64) (*FlightSummary, error)
}

// Cache provides advisory cross-process seat locks. Nil is a valid value:
// a single-process deployment relies on the engine mutex alone.
type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, seatNumber string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, seatNumber string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type PassengerSummary struct {
	Passenger domain.Passenger `json:"passenger"`
	Bookings  []domain.Booking `json:"bookings"`
}

type FlightSummary struct {
	Flight   domain.Flight    `json:"flight"`
	Bookings []domain.Booking `json:"bookings"`
}

type BookingService struct {
	mu sync.Mutex

	flights    store.FlightStore
	seats      store.SeatStore
	passengers store.PassengerStore
	bookings   store.BookingStore

	cache       Cache
	producer    Producer
	eventsTopic string
	seatLockTTL time.Duration
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache, seatLockTTL time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
		s.seatLockTTL = seatLockTTL
	}
}

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(
	flights store.FlightStore,
	seats store.SeatStore,
	passengers store.PassengerStore,
	bookings store.BookingStore,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		flights:    flights,
		seats:      seats,
		passengers: passengers,
		bookings:   bookings,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookSeat commits one aggregate-counter booking: it increments the flight's
// booked-seat count and creates the booking record. If the booking insert
// fails after the counter was persisted, the counter increment is rolled
// back so the two collections stay consistent.
func (s *BookingService) BookSeat(ctx context.Context, flightID, passengerID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.passengers.GetByID(ctx, passengerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	if flight.Status == domain.FlightStatusDeparted || flight.Status == domain.FlightStatusCancelled {
		return nil, ErrFlightClosed
	}
	if !flight.HasAvailableSeats() {
		return nil, ErrFlightFull
	}
	// the verb re-checks status and capacity at the boundary
	if !flight.BookSeat() {
		return nil, ErrFlightFull
	}

	if _, err := s.flights.Update(ctx, flight.ID, store.FlightPatch{BookedSeats: &flight.BookedSeats}); err != nil {
		return nil, err
	}

	booking, err := s.bookings.Insert(ctx, store.NewBooking{
		FlightID:    flight.ID,
		PassengerID: passengerID,
		Reference:   uuid.NewString(),
		BookedAt:    time.Now().UTC(),
	})
	if err != nil {
		s.compensateSeatCount(ctx, flight.ID)
		return nil, err
	}

	s.publish(ctx, "booking_created", booking.Reference, booking)
	return booking, nil
}

// CancelBooking removes the booking record first, then gives the seat back
// to the flight. A missing flight is tolerated: seat accounting for a
// deleted flight is moot. A terminal flight's count is frozen and is not
// decremented.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	removed, err := s.bookings.Remove(ctx, bookingID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrBookingNotFound
	}

	flight, err := s.flights.GetByID(ctx, booking.FlightID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.publish(ctx, "booking_cancelled", booking.Reference, booking)
			return nil
		}
		return err
	}

	if flight.Status != domain.FlightStatusDeparted && flight.Status != domain.FlightStatusCancelled {
		flight.ReleaseSeat()
		if _, err := s.flights.Update(ctx, flight.ID, store.FlightPatch{BookedSeats: &flight.BookedSeats}); err != nil {
			return err
		}
	}

	s.publish(ctx, "booking_cancelled", booking.Reference, booking)
	return nil
}

// ReserveSeat is the seat-level reservation path. It binds a passenger to a
// concrete seat and deliberately leaves the flight's aggregate booked-seat
// counter alone; the two mechanisms do not cross-update.
func (s *BookingService) ReserveSeat(ctx context.Context, flightID int64, seatNumber string, passengerID int64) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.passengers.GetByID(ctx, passengerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	if flight.Status == domain.FlightStatusDeparted || flight.Status == domain.FlightStatusCancelled {
		return nil, ErrFlightClosed
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, flightID, seatNumber, s.seatLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSeatTaken
		}
		defer func() {
			if err := s.cache.ReleaseSeatLock(ctx, flightID, seatNumber); err != nil {
				log.Printf("release seat lock %d/%s: %v", flightID, seatNumber, err)
			}
		}()
	}

	seat, err := s.seats.FindByFlightAndNumber(ctx, flightID, seatNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	if !seat.Reserve(passengerID) {
		return nil, ErrSeatTaken
	}

	updated, err := s.seats.Update(ctx, seat.ID, store.SeatPatch{
		IsReserved: &seat.IsReserved,
		ReservedBy: seat.ReservedBy,
	})
	if err != nil {
		return nil, err
	}

	s.publishSeat(ctx, "seat_reserved", flightID, seatNumber, passengerID)
	return updated, nil
}

// ReleaseSeat clears a seat-level reservation.
func (s *BookingService) ReleaseSeat(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, err := s.seats.FindByFlightAndNumber(ctx, flightID, seatNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}

	holder := seat.ReservedBy
	if !seat.Release() {
		return nil, ErrSeatNotReserved
	}

	updated, err := s.seats.Update(ctx, seat.ID, store.SeatPatch{IsReserved: &seat.IsReserved})
	if err != nil {
		return nil, err
	}

	var holderID int64
	if holder != nil {
		holderID = *holder
	}
	s.publishSeat(ctx, "seat_released", flightID, seatNumber, holderID)
	return updated, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) SummaryByPassenger(ctx context.Context, passengerID int64) (*PassengerSummary, error) {
	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPassengerNotFound
		}
		return nil, err
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PassengerSummary{Passenger: *passenger, Bookings: make([]domain.Booking, 0)}
	for _, b := range bookings {
		if b.PassengerID == passengerID {
			summary.Bookings = append(summary.Bookings, b)
		}
	}
	return summary, nil
}

func (s *BookingService) SummaryByFlight(ctx context.Context, flightID int64) (*FlightSummary, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &FlightSummary{Flight: *flight, Bookings: make([]domain.Booking, 0)}
	for _, b := range bookings {
		if b.FlightID == flightID {
			summary.Bookings = append(summary.Bookings, b)
		}
	}
	return summary, nil
}

// compensateSeatCount undoes a persisted counter increment after the booking
// insert failed. Best effort: if the rollback itself fails the inconsistency
// is logged, the caller already gets the original error.
func (s *BookingService) compensateSeatCount(ctx context.Context, flightID int64) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		log.Printf("compensate flight %d: reload: %v", flightID, err)
		return
	}
	flight.ReleaseSeat()
	if _, err := s.flights.Update(ctx, flightID, store.FlightPatch{BookedSeats: &flight.BookedSeats}); err != nil {
		log.Printf("compensate flight %d: update: %v", flightID, err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType, key string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := BookingEvent{
		Type:        eventType,
		Reference:   booking.Reference,
		BookingID:   booking.ID,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
		BookedAt:    booking.BookedAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, key, err)
	}
}

func (s *BookingService) publishSeat(ctx context.Context, eventType string, flightID int64, seatNumber string, passengerID int64) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := SeatEvent{
		Type:        eventType,
		FlightID:    flightID,
		SeatNumber:  seatNumber,
		PassengerID: passengerID,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, seatNumber, event); err != nil {
		log.Printf("publish %s event for %s: %v", eventType, seatNumber, err)
	}
}

// BookingEvent is the payload published for committed booking mutations.
type BookingEvent struct {
	Type        string    `json:"type"`
	Reference   string    `json:"reference"`
	BookingID   int64     `json:"booking_id"`
	FlightID    int64     `json:"flight_id"`
	PassengerID int64     `json:"passenger_id"`
	BookedAt    time.Time `json:"booked_at"`
}

// SeatEvent is the payload published for seat-level reservation changes.
// Seat reservations have no booking record, so the event carries the seat
// identity instead of a reference.
type SeatEvent struct {
	Type        string `json:"type"`
	FlightID    int64  `json:"flight_id"`
	SeatNumber  string `json:"seat_number"`
	PassengerID int64  `json:"passenger_id,omitempty"`
}

var _ BookingUseCase = (*BookingService)(nil)
