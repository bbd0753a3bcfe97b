package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okunev/flightdesk/internal/store"
)

// PassengerHandler talks to the passenger store directly: passenger records
// have no cross-collection rules, so there is no engine in between.
type PassengerHandler struct {
	passengers store.PassengerStore
}

func NewPassengerHandler(passengers store.PassengerStore) *PassengerHandler {
	return &PassengerHandler{passengers: passengers}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

type createPassengerRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	PassportNumber string `json:"passport_number" binding:"required"`
}

type updatePassengerRequest struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	PassportNumber *string `json:"passport_number"`
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.passengers.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	passenger, err := h.passengers.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.passengers.Insert(c.Request.Context(), store.NewPassenger{
		Name:           req.Name,
		Age:            req.Age,
		PassportNumber: req.PassportNumber,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.passengers.Update(c.Request.Context(), id, store.PassengerPatch{
		Name:           req.Name,
		Age:            req.Age,
		PassportNumber: req.PassportNumber,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

func (h *PassengerHandler) remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	removed, err := h.passengers.Remove(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "passenger not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
