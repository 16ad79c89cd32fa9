package handlers

import (
	"net/http"

	"fundi/models"
	"fundi/services/rating"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// RatingHandler exposes rating endpoints.
type RatingHandler struct {
	Service rating.RatingService
}

// CreateRatingHandler records a client's review of a completed booking.
func (h *RatingHandler) CreateRatingHandler(c *gin.Context) {
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	r, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create rating", err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GetRatingHandler fetches one rating by id.
func (h *RatingHandler) GetRatingHandler(c *gin.Context) {
	r, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch rating", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ListRatingsHandler filters ratings by clientId/workerId/bookingId query
// params; with no filter it returns the bare id list.
func (h *RatingHandler) ListRatingsHandler(c *gin.Context) {
	clientID := c.Query("clientId")
	workerID := c.Query("workerId")
	bookingID := c.Query("bookingId")
	if clientID == "" && workerID == "" && bookingID == "" {
		ids, err := h.Service.ListIDs(c.Request.Context())
		if err != nil {
			utils.JSONAppError(c, "failed to list ratings", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ratingIds": ids})
		return
	}
	ratings, err := h.Service.Query(c.Request.Context(), clientID, workerID, bookingID)
	if err != nil {
		utils.JSONAppError(c, "failed to list ratings", err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// UpdateRatingHandler replaces a rating's criterion scores.
func (h *RatingHandler) UpdateRatingHandler(c *gin.Context) {
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	r, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONAppError(c, "failed to update rating", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRatingHandler removes a rating.
func (h *RatingHandler) DeleteRatingHandler(c *gin.Context) {
	found, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete rating", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}
