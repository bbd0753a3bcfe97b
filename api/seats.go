package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/service/booking"
	"github.com/okunev/flightdesk/internal/store"
)

// SeatHandler uses the seat store for inventory and the booking engine for
// reserve/release, which are composite operations.
type SeatHandler struct {
	seats   store.SeatStore
	service booking.BookingUseCase
}

func NewSeatHandler(seats store.SeatStore, service booking.BookingUseCase) *SeatHandler {
	return &SeatHandler{seats: seats, service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.POST("/reserve", h.reserve)
	router.POST("/release", h.release)
}

type createSeatRequest struct {
	SeatNumber string `json:"seat_number" binding:"required"`
	SeatType   string `json:"seat_type" binding:"required,oneof=aisle middle window"`
	FlightID   int64  `json:"flight_id" binding:"required"`
}

type reserveSeatRequest struct {
	FlightID    int64  `json:"flight_id" binding:"required"`
	SeatNumber  string `json:"seat_number" binding:"required"`
	PassengerID int64  `json:"passenger_id" binding:"required"`
}

type releaseSeatRequest struct {
	FlightID   int64  `json:"flight_id" binding:"required"`
	SeatNumber string `json:"seat_number" binding:"required"`
}

func (h *SeatHandler) list(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("flight_id"); raw != "" {
		flightID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight_id"})
			return
		}
		seats, err := h.seats.ListByFlight(ctx, flightID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, seats)
		return
	}

	seats, err := h.seats.List(ctx)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *SeatHandler) create(c *gin.Context) {
	var req createSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seat, err := h.seats.Insert(c.Request.Context(), store.NewSeat{
		SeatNumber: req.SeatNumber,
		SeatType:   domain.SeatType(req.SeatType),
		FlightID:   req.FlightID,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seat)
}

func (h *SeatHandler) reserve(c *gin.Context) {
	var req reserveSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seat, err := h.service.ReserveSeat(c.Request.Context(), req.FlightID, req.SeatNumber, req.PassengerID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) release(c *gin.Context) {
	var req releaseSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seat, err := h.service.ReleaseSeat(c.Request.Context(), req.FlightID, req.SeatNumber)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}
