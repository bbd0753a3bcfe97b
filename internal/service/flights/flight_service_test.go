package flights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
	"github.com/okunev/flightdesk/internal/store/memstore"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newService(t *testing.T, opts ...FlightServiceOption) (*FlightService, *memstore.Stores) {
	t.Helper()
	stores := memstore.New()
	return NewFlightService(stores.Flights, opts...), stores
}

func addFlight(t *testing.T, stores *memstore.Stores, departure time.Time, status domain.FlightStatus) *domain.Flight {
	t.Helper()
	flight, err := stores.Flights.Insert(context.Background(), store.NewFlight{
		FlightNumber:  "SU100",
		Origin:        "SVO",
		Destination:   "LED",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(90 * time.Minute),
		Capacity:      2,
		Status:        status,
	})
	require.NoError(t, err)
	return flight
}

func TestFlightService_List_PrefersCache(t *testing.T) {
	ctx := context.Background()
	cached := []domain.Flight{{ID: 9, FlightNumber: "CACHED"}}

	cache := &MockCache{}
	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	service, _ := newService(t, WithCache(cache))

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, flights)
	cache.AssertExpectations(t)
}

func TestFlightService_List_FillsCacheOnMiss(t *testing.T) {
	ctx := context.Background()

	cache := &MockCache{}
	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	cache.On("SetFlights", ctx, mock.Anything).Return(nil).Once()

	service, stores := newService(t, WithCache(cache))
	addFlight(t, stores, time.Now().Add(2*time.Hour), domain.FlightStatusScheduled)

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 1)
	cache.AssertExpectations(t)
}

func TestFlightService_Create_InvalidatesCache(t *testing.T) {
	ctx := context.Background()

	cache := &MockCache{}
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	service, _ := newService(t, WithCache(cache))
	_, err := service.Create(ctx, store.NewFlight{FlightNumber: "SU100", Capacity: 10, Status: domain.FlightStatusScheduled})
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestFlightService_Delay(t *testing.T) {
	ctx := context.Background()
	service, stores := newService(t)
	departure := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	flight := addFlight(t, stores, departure, domain.FlightStatusScheduled)

	updated, err := service.Delay(ctx, flight.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, departure.Add(40*time.Minute), updated.DepartureTime)
	assert.Equal(t, domain.FlightStatusScheduled, updated.Status)
}

func TestFlightService_SetStatus_TerminalRefused(t *testing.T) {
	ctx := context.Background()
	service, stores := newService(t)
	flight := addFlight(t, stores, time.Now().Add(time.Hour), domain.FlightStatusDeparted)

	_, err := service.SetStatus(ctx, flight.ID, domain.FlightStatusScheduled)
	assert.ErrorIs(t, err, ErrTerminalStatus)

	stored, getErr := stores.Flights.GetByID(ctx, flight.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.FlightStatusDeparted, stored.Status)
}

func TestFlightService_Cancel(t *testing.T) {
	ctx := context.Background()
	service, stores := newService(t)
	flight := addFlight(t, stores, time.Now().Add(time.Hour), domain.FlightStatusBoarding)

	cancelled, err := service.Cancel(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FlightStatusCancelled, cancelled.Status)

	departed := addFlight(t, stores, time.Now().Add(time.Hour), domain.FlightStatusDeparted)
	_, err = service.Cancel(ctx, departed.ID)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestFlightService_BoardPassenger(t *testing.T) {
	ctx := context.Background()
	service, stores := newService(t)
	flight := addFlight(t, stores, time.Now().Add(time.Hour), domain.FlightStatusBoarding)

	boarded, err := service.BoardPassenger(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, boarded.BookedSeats)

	_, err = service.BoardPassenger(ctx, flight.ID)
	require.NoError(t, err)
	_, err = service.BoardPassenger(ctx, flight.ID)
	assert.ErrorIs(t, err, ErrFlightFull)
}

func TestFlightService_DepartingSoon(t *testing.T) {
	ctx := context.Background()
	service, stores := newService(t)

	addFlight(t, stores, time.Now().Add(20*time.Minute), domain.FlightStatusBoarding)
	addFlight(t, stores, time.Now().Add(5*time.Hour), domain.FlightStatusScheduled)
	addFlight(t, stores, time.Now().Add(-time.Hour), domain.FlightStatusDeparted)

	soon, err := service.DepartingSoon(ctx)
	require.NoError(t, err)
	require.Len(t, soon, 1)
	assert.Equal(t, int64(1), soon[0].ID)
}

func TestFlightService_GetByID_Unknown(t *testing.T) {
	service, _ := newService(t)
	_, err := service.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
