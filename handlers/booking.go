package handlers

import (
	"net/http"

	"fundi/models"
	"fundi/services/booking"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// CreateBookingHandler books a worker for a subservice.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booked, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// GetBookingHandler fetches one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booked, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, booked)
}

// ListBookingsHandler returns bookings categorized into current and past.
// With no clientId/workerId query filter it returns the bare id list instead.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	clientID := c.Query("clientId")
	workerID := c.Query("workerId")
	if clientID == "" && workerID == "" {
		ids, err := h.Service.ListIDs(c.Request.Context())
		if err != nil {
			utils.JSONAppError(c, "failed to list bookings", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookingIds": ids})
		return
	}
	categorized, err := h.Service.List(c.Request.Context(), clientID, workerID)
	if err != nil {
		utils.JSONAppError(c, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, categorized)
}

// UpdateBookingHandler applies a partial update to a booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteBookingHandler cancels a booking and releases the worker's slot.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	found, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}

// UnratedCompletedWorkHandler returns the client's first completed, unrated
// booking so the app can prompt for a rating. 204 when there is none.
func (h *BookingHandler) UnratedCompletedWorkHandler(c *gin.Context) {
	booked, err := h.Service.UnratedCompletedWork(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch unrated work", err)
		return
	}
	if booked == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, booked)
}
