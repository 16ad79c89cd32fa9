package handlers

import (
	"net/http"

	"fundi/models"
	"fundi/services/catalog"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the service/subservice reference data endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// CreateServiceHandler creates a top-level service category.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.CreateService(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create service", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetServiceHandler fetches one service by id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListServicesHandler returns all service categories.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONAppError(c, "failed to list services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler applies a partial update to a service.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.UpdateService(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteServiceHandler removes a service category.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	found, err := h.Service.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}

// CreateSubserviceHandler creates a bookable subservice under a service.
func (h *CatalogHandler) CreateSubserviceHandler(c *gin.Context) {
	var input models.Subservice
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.CreateSubservice(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create subservice", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSubserviceHandler fetches one subservice by id.
func (h *CatalogHandler) GetSubserviceHandler(c *gin.Context) {
	sub, err := h.Service.GetSubservice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch subservice", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListSubservicesHandler lists subservices, optionally filtered by serviceId.
func (h *CatalogHandler) ListSubservicesHandler(c *gin.Context) {
	subs, err := h.Service.ListSubservices(c.Request.Context(), c.Query("serviceId"))
	if err != nil {
		utils.JSONAppError(c, "failed to list subservices", err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// UpdateSubserviceHandler applies a partial update to a subservice.
func (h *CatalogHandler) UpdateSubserviceHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.UpdateSubservice(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update subservice", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteSubserviceHandler removes a subservice.
func (h *CatalogHandler) DeleteSubserviceHandler(c *gin.Context) {
	found, err := h.Service.DeleteSubservice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete subservice", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}
