package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeat_ReserveAndRelease(t *testing.T) {
	fid := int64(7)
	s := &Seat{ID: 1, SeatNumber: "12A", SeatType: SeatTypeWindow, FlightID: &fid}

	assert.True(t, s.Reserve(42))
	assert.True(t, s.IsReserved)
	if assert.NotNil(t, s.ReservedBy) {
		assert.Equal(t, int64(42), *s.ReservedBy)
	}

	// second reservation must not steal the seat
	assert.False(t, s.Reserve(99))
	assert.Equal(t, int64(42), *s.ReservedBy)

	assert.True(t, s.Release())
	assert.False(t, s.IsReserved)
	assert.Nil(t, s.ReservedBy)

	assert.False(t, s.Release())
}

func TestSeat_TypePredicates(t *testing.T) {
	assert.True(t, (&Seat{SeatType: SeatTypeWindow}).IsWindow())
	assert.True(t, (&Seat{SeatType: SeatTypeMiddle}).IsMiddle())
	assert.True(t, (&Seat{SeatType: SeatTypeAisle}).IsAisle())
	assert.False(t, (&Seat{SeatType: SeatTypeAisle}).IsWindow())
}

func TestSeat_IsAvailable(t *testing.T) {
	s := &Seat{SeatNumber: "1C", SeatType: SeatTypeAisle}
	assert.True(t, s.IsAvailable())
	s.Reserve(1)
	assert.False(t, s.IsAvailable())
}
