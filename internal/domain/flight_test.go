package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scheduledFlight(capacity, booked int) *Flight {
	return &Flight{
		ID:            1,
		FlightNumber:  "EK202",
		Origin:        "DXB",
		Destination:   "LHR",
		DepartureTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC),
		Capacity:      capacity,
		BookedSeats:   booked,
		Status:        FlightStatusScheduled,
	}
}

func TestFlight_BookSeat_UntilFull(t *testing.T) {
	f := scheduledFlight(2, 0)

	assert.True(t, f.BookSeat())
	assert.True(t, f.BookSeat())
	assert.Equal(t, 2, f.BookedSeats)
	assert.True(t, f.IsFull())

	// third attempt must refuse and leave the count alone
	assert.False(t, f.BookSeat())
	assert.Equal(t, 2, f.BookedSeats)
}

func TestFlight_BookSeat_TerminalStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status FlightStatus
		want   bool
	}{
		{name: "scheduled", status: FlightStatusScheduled, want: true},
		{name: "boarding", status: FlightStatusBoarding, want: true},
		{name: "departed", status: FlightStatusDeparted, want: false},
		{name: "cancelled", status: FlightStatusCancelled, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := scheduledFlight(100, 0)
			f.Status = tc.status

			assert.Equal(t, tc.want, f.BookSeat())
			if !tc.want {
				assert.Equal(t, 0, f.BookedSeats)
			}
		})
	}
}

func TestFlight_BoardPassenger(t *testing.T) {
	f := scheduledFlight(1, 0)
	f.Status = FlightStatusBoarding

	assert.True(t, f.BoardPassenger())
	assert.False(t, f.BoardPassenger())
	assert.Equal(t, 1, f.BookedSeats)
}

func TestFlight_ReleaseSeat_FlooredAtZero(t *testing.T) {
	f := scheduledFlight(10, 1)

	f.ReleaseSeat()
	assert.Equal(t, 0, f.BookedSeats)
	f.ReleaseSeat()
	assert.Equal(t, 0, f.BookedSeats)
}

func TestFlight_Cancel(t *testing.T) {
	f := scheduledFlight(10, 0)
	assert.True(t, f.Cancel())
	assert.Equal(t, FlightStatusCancelled, f.Status)

	departed := scheduledFlight(10, 0)
	departed.Status = FlightStatusDeparted
	assert.False(t, departed.Cancel())
	assert.Equal(t, FlightStatusDeparted, departed.Status)
}

func TestFlight_SetStatus_TerminalIsFrozen(t *testing.T) {
	f := scheduledFlight(10, 0)
	assert.True(t, f.SetStatus(FlightStatusBoarding))
	assert.True(t, f.SetStatus(FlightStatusDeparted))

	assert.False(t, f.SetStatus(FlightStatusScheduled))
	assert.False(t, f.SetStatus(FlightStatusCancelled))
	assert.Equal(t, FlightStatusDeparted, f.Status)
}

func TestFlight_Delay(t *testing.T) {
	f := scheduledFlight(10, 0)
	dep, arr := f.DepartureTime, f.ArrivalTime

	f.Delay(45)
	assert.Equal(t, dep.Add(45*time.Minute), f.DepartureTime)
	assert.Equal(t, arr.Add(45*time.Minute), f.ArrivalTime)
	assert.Equal(t, FlightStatusScheduled, f.Status)

	f.Delay(0)
	f.Delay(-30)
	assert.Equal(t, dep.Add(45*time.Minute), f.DepartureTime)
}

func TestFlight_IsDepartingSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		departure time.Time
		want      bool
	}{
		{name: "within the window", departure: now.Add(30 * time.Minute), want: true},
		{name: "exactly at the window edge", departure: now.Add(DepartingSoonWindow), want: true},
		{name: "beyond the window", departure: now.Add(2 * time.Hour), want: false},
		{name: "already departed", departure: now.Add(-time.Minute), want: false},
		{name: "departing right now", departure: now, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := scheduledFlight(10, 0)
			f.DepartureTime = tc.departure
			assert.Equal(t, tc.want, f.IsDepartingSoon(now, 0))
		})
	}
}

func TestFlight_AvailableSeats(t *testing.T) {
	f := scheduledFlight(5, 3)
	assert.Equal(t, 2, f.AvailableSeats())
	assert.True(t, f.HasAvailableSeats())

	f.BookedSeats = 5
	assert.Equal(t, 0, f.AvailableSeats())
	assert.False(t, f.HasAvailableSeats())
}
