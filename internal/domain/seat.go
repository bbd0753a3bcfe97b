package domain

type SeatType string

const (
	SeatTypeAisle  SeatType = "aisle"
	SeatTypeMiddle SeatType = "middle"
	SeatTypeWindow SeatType = "window"
)

// Seat belongs to exactly one flight for its lifetime. IsReserved and
// ReservedBy change together: a seat is reserved exactly when ReservedBy is
// set.
type Seat struct {
	ID         int64    `json:"id"`
	SeatNumber string   `json:"seatNumber"`
	SeatType   SeatType `json:"seatType"`
	IsReserved bool     `json:"isReserved"`
	ReservedBy *int64   `json:"reservedBy"`
	FlightID   *int64   `json:"flightId"`
}

// Reserve marks the seat as held by the passenger. It fails if the seat is
// already reserved.
func (s *Seat) Reserve(passengerID int64) bool {
	if s.IsReserved {
		return false
	}
	s.IsReserved = true
	s.ReservedBy = &passengerID
	return true
}

// Release clears the reservation. It fails if the seat is not reserved.
func (s *Seat) Release() bool {
	if !s.IsReserved {
		return false
	}
	s.IsReserved = false
	s.ReservedBy = nil
	return true
}

func (s *Seat) IsAvailable() bool {
	return !s.IsReserved
}

func (s *Seat) IsWindow() bool { return s.SeatType == SeatTypeWindow }
func (s *Seat) IsMiddle() bool { return s.SeatType == SeatTypeMiddle }
func (s *Seat) IsAisle() bool  { return s.SeatType == SeatTypeAisle }
