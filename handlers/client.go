package handlers

import (
	"net/http"

	"fundi/models"
	"fundi/services/client"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes client profile endpoints.
type ClientHandler struct {
	Service client.ClientService
}

// RegisterClientHandler creates a new client profile.
func (h *ClientHandler) RegisterClientHandler(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to register client", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClientHandler fetches one client by id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	cl, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch client", err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// ListClientsHandler returns every client id.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	ids, err := h.Service.ListIDs(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, "failed to list clients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientIds": ids})
}

// UpdateClientHandler applies a partial update to a client profile.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteClientHandler removes a client profile.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	found, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}
