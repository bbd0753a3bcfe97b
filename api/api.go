// Package api is the HTTP presentation shell. Handlers parse and validate
// primitive arguments, call the services or stores, and render the result;
// business rules live below this layer.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okunev/flightdesk/internal/service/booking"
	"github.com/okunev/flightdesk/internal/service/flights"
	"github.com/okunev/flightdesk/internal/store"
)

func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, passengers store.PassengerStore, seats store.SeatStore) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	NewPassengerHandler(passengers).Register(v1.Group("/passengers"))
	NewSeatHandler(seats, bookingSvc).Register(v1.Group("/seats"))
	NewBookingHandler(bookingSvc).Register(v1.Group("/bookings"))

	return router
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// renderError maps expected precondition failures onto HTTP statuses;
// everything else is a storage failure and reports as 500.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrPassengerNotFound),
		errors.Is(err, booking.ErrFlightNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrSeatNotFound),
		errors.Is(err, flights.ErrFlightNotFound),
		errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrFlightClosed),
		errors.Is(err, booking.ErrFlightFull),
		errors.Is(err, booking.ErrSeatTaken),
		errors.Is(err, booking.ErrSeatNotReserved),
		errors.Is(err, flights.ErrTerminalStatus),
		errors.Is(err, flights.ErrFlightFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
