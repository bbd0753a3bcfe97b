package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// DepartingSoonWindow is the default horizon for IsDepartingSoon.
const DepartingSoonWindow = time.Hour

// Flight is the aggregate side of seat accounting: BookedSeats counts
// committed bookings against Capacity. Per-seat reservation state lives on
// Seat and is tracked independently.
type Flight struct {
	ID            int64        `json:"id"`
	FlightNumber  string       `json:"flightNumber"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Capacity      int          `json:"capacity"`
	BookedSeats   int          `json:"bookedSeats"`
	Status        FlightStatus `json:"status"`
}

func (f *Flight) IsFull() bool {
	return f.BookedSeats >= f.Capacity
}

func (f *Flight) HasAvailableSeats() bool {
	return f.BookedSeats < f.Capacity
}

func (f *Flight) AvailableSeats() int {
	if n := f.Capacity - f.BookedSeats; n > 0 {
		return n
	}
	return 0
}

func (f *Flight) isTerminal() bool {
	return f.Status == FlightStatusDeparted || f.Status == FlightStatusCancelled
}

// BookSeat increments the booked-seat count. It refuses on a terminal status
// or a full flight and reports whether the increment happened.
func (f *Flight) BookSeat() bool {
	if f.isTerminal() || f.IsFull() {
		return false
	}
	f.BookedSeats++
	return true
}

// BoardPassenger has the same guard as BookSeat; it exists for the boarding
// flow where the increment represents a passenger physically on board.
func (f *Flight) BoardPassenger() bool {
	if f.isTerminal() || !f.HasAvailableSeats() {
		return false
	}
	f.BookedSeats++
	return true
}

// ReleaseSeat decrements the booked-seat count, floored at zero.
func (f *Flight) ReleaseSeat() {
	if f.BookedSeats > 0 {
		f.BookedSeats--
	}
}

// Cancel moves the flight to cancelled. Departed is terminal and wins.
func (f *Flight) Cancel() bool {
	if f.Status == FlightStatusDeparted {
		return false
	}
	f.Status = FlightStatusCancelled
	return true
}

// SetStatus refuses to overwrite a terminal status.
func (f *Flight) SetStatus(status FlightStatus) bool {
	if f.isTerminal() {
		return false
	}
	f.Status = status
	return true
}

// Delay shifts departure and arrival by the same offset. Non-positive delays
// are ignored. The status is not touched.
func (f *Flight) Delay(minutes int) {
	if minutes <= 0 {
		return
	}
	shift := time.Duration(minutes) * time.Minute
	f.DepartureTime = f.DepartureTime.Add(shift)
	f.ArrivalTime = f.ArrivalTime.Add(shift)
}

// IsDepartingSoon reports whether departure is strictly in the future and
// within the given window. A zero window means DepartingSoonWindow.
func (f *Flight) IsDepartingSoon(now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DepartingSoonWindow
	}
	if !f.DepartureTime.After(now) {
		return false
	}
	return f.DepartureTime.Sub(now) <= window
}
