package handlers

import (
	"net/http"
	"strconv"

	"fundi/models"
	"fundi/services/worker"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// WorkerHandler exposes worker profile endpoints.
type WorkerHandler struct {
	Service worker.WorkerService
}

// RegisterWorkerHandler creates a new worker profile.
func (h *WorkerHandler) RegisterWorkerHandler(c *gin.Context) {
	var input models.Worker
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to register worker", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWorkerHandler fetches one worker by id.
func (h *WorkerHandler) GetWorkerHandler(c *gin.Context) {
	w, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch worker", err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// ListWorkersHandler lists workers by subservice, or every worker id when no
// filter is given.
func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	subserviceID := c.Query("subserviceId")
	if subserviceID == "" {
		ids, err := h.Service.ListIDs(c.Request.Context())
		if err != nil {
			utils.JSONAppError(c, "failed to list workers", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"workerIds": ids})
		return
	}
	workers, err := h.Service.BySubservice(c.Request.Context(), subserviceID)
	if err != nil {
		utils.JSONAppError(c, "failed to list workers", err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

// TopRatedWorkersHandler returns the n highest-rated workers (default 10).
func (h *WorkerHandler) TopRatedWorkersHandler(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "n must be an integer")
		return
	}
	workers, err := h.Service.TopRated(c.Request.Context(), n)
	if err != nil {
		utils.JSONAppError(c, "failed to fetch top rated workers", err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

// UpdateWorkerHandler applies a partial update to a worker profile.
func (h *WorkerHandler) UpdateWorkerHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update worker", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteWorkerHandler removes a worker profile.
func (h *WorkerHandler) DeleteWorkerHandler(c *gin.Context) {
	found, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete worker", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}
