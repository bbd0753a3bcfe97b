package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

func newFlightInput(number string) store.NewFlight {
	return store.NewFlight{
		FlightNumber:  number,
		Origin:        "DXB",
		Destination:   "LHR",
		DepartureTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC),
		Capacity:      180,
		Status:        domain.FlightStatusScheduled,
	}
}

func TestFlightStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	flights, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestFlightStore_InsertAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	first, err := s.Insert(ctx, newFlightInput("SU100"))
	require.NoError(t, err)
	second, err := s.Insert(ctx, newFlightInput("SU200"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 0, first.BookedSeats)
}

func TestFlightStore_IDsStayMonotonicAfterRemove(t *testing.T) {
	ctx := context.Background()
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	_, err := s.Insert(ctx, newFlightInput("SU100"))
	require.NoError(t, err)
	second, err := s.Insert(ctx, newFlightInput("SU200"))
	require.NoError(t, err)

	removed, err := s.Remove(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// the counter must not hand the removed id out again
	third, err := s.Insert(ctx, newFlightInput("SU300"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestFlightStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "flights.json")

	s := NewFlightStore(path)
	inserted, err := s.Insert(ctx, newFlightInput("EK202"))
	require.NoError(t, err)

	// a fresh store over the same file must see an equivalent collection
	reopened := NewFlightStore(path)
	flights, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, inserted.ID, flights[0].ID)
	assert.Equal(t, "EK202", flights[0].FlightNumber)
	assert.True(t, inserted.DepartureTime.Equal(flights[0].DepartureTime))
	assert.Equal(t, domain.FlightStatusScheduled, flights[0].Status)
}

func TestFlightStore_UpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	flight, err := s.Insert(ctx, newFlightInput("SU100"))
	require.NoError(t, err)

	booked := 5
	updated, err := s.Update(ctx, flight.ID, store.FlightPatch{BookedSeats: &booked})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.BookedSeats)
	assert.Equal(t, "SU100", updated.FlightNumber)
	assert.Equal(t, 180, updated.Capacity)
}

func TestFlightStore_UpdateUnknownID(t *testing.T) {
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	booked := 1
	_, err := s.Update(context.Background(), 42, store.FlightPatch{BookedSeats: &booked})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFlightStore_RemoveReportsWhetherAnythingChanged(t *testing.T) {
	ctx := context.Background()
	s := NewFlightStore(filepath.Join(t.TempDir(), "flights.json"))

	flight, err := s.Insert(ctx, newFlightInput("SU100"))
	require.NoError(t, err)

	removed, err := s.Remove(ctx, flight.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(ctx, flight.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPassengerStore_EmptyPatchLeavesFileUntouched(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "passengers.json")
	s := NewPassengerStore(path)

	p, err := s.Insert(ctx, store.NewPassenger{Name: "Ada", Age: 36, PassportNumber: "P123456"})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	unchanged, err := s.Update(ctx, p.ID, store.PassengerPatch{})
	require.NoError(t, err)
	assert.Equal(t, *p, *unchanged)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPassengerStore_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewPassengerStore(filepath.Join(t.TempDir(), "passengers.json"))

	p, err := s.Insert(ctx, store.NewPassenger{Name: "Ada", Age: 36, PassportNumber: "P123456"})
	require.NoError(t, err)

	age := 37
	updated, err := s.Update(ctx, p.ID, store.PassengerPatch{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 37, updated.Age)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "P123456", updated.PassportNumber)
}

func TestSeatStore_FindByFlightAndNumber(t *testing.T) {
	ctx := context.Background()
	s := NewSeatStore(filepath.Join(t.TempDir(), "seats.json"))

	_, err := s.Insert(ctx, store.NewSeat{SeatNumber: "12A", SeatType: domain.SeatTypeWindow, FlightID: 1})
	require.NoError(t, err)
	_, err = s.Insert(ctx, store.NewSeat{SeatNumber: "12A", SeatType: domain.SeatTypeWindow, FlightID: 2})
	require.NoError(t, err)

	seat, err := s.FindByFlightAndNumber(ctx, 2, "12A")
	require.NoError(t, err)
	require.NotNil(t, seat.FlightID)
	assert.Equal(t, int64(2), *seat.FlightID)

	_, err = s.FindByFlightAndNumber(ctx, 3, "12A")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSeatStore_UpdateReservation(t *testing.T) {
	ctx := context.Background()
	s := NewSeatStore(filepath.Join(t.TempDir(), "seats.json"))

	seat, err := s.Insert(ctx, store.NewSeat{SeatNumber: "1C", SeatType: domain.SeatTypeAisle, FlightID: 1})
	require.NoError(t, err)

	reserved := true
	passengerID := int64(42)
	updated, err := s.Update(ctx, seat.ID, store.SeatPatch{IsReserved: &reserved, ReservedBy: &passengerID})
	require.NoError(t, err)
	assert.True(t, updated.IsReserved)
	require.NotNil(t, updated.ReservedBy)
	assert.Equal(t, int64(42), *updated.ReservedBy)

	// releasing must clear the holder even without an explicit ReservedBy
	released := false
	updated, err = s.Update(ctx, seat.ID, store.SeatPatch{IsReserved: &released})
	require.NoError(t, err)
	assert.False(t, updated.IsReserved)
	assert.Nil(t, updated.ReservedBy)
}

func TestBookingStore_InsertAndRemove(t *testing.T) {
	ctx := context.Background()
	s := NewBookingStore(filepath.Join(t.TempDir(), "bookings.json"))

	b, err := s.Insert(ctx, store.NewBooking{
		FlightID:    1,
		PassengerID: 42,
		Reference:   "ref-1",
		BookedAt:    time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)

	got, err := s.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", got.Reference)

	removed, err := s.Remove(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	stores, err := Open(dir)
	require.NoError(t, err)

	_, err = stores.Flights.Insert(context.Background(), newFlightInput("SU100"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "flights.json"))
	assert.NoError(t, err)
}
