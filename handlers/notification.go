package handlers

import (
	"net/http"

	"fundi/models"
	"fundi/services/workalert"
	"fundi/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the work-alert protocol endpoints plus general
// notification reads.
type NotificationHandler struct {
	Service workalert.WorkAlertService
}

// CreateWorkAlertHandler broadcasts an immediate work alert to the workers
// registered for a subservice.
func (h *NotificationHandler) CreateWorkAlertHandler(c *gin.Context) {
	var input models.WorkAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	alert, err := h.Service.CreateAlert(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create work alert", err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// RejectWorkAlertHandler releases one worker's slot on an open alert.
func (h *NotificationHandler) RejectWorkAlertHandler(c *gin.Context) {
	var input models.WorkAlertRejectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.RejectAlert(c.Request.Context(), input); err != nil {
		utils.JSONAppError(c, "failed to reject work alert", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": true})
}

// CreateApprovalRequestHandler forwards a worker's acceptance to the client.
func (h *NotificationHandler) CreateApprovalRequestHandler(c *gin.Context) {
	var input models.WorkApprovalRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	request, err := h.Service.CreateApprovalRequest(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to create approval request", err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// ConfirmWorkHandler is the client accepting an approval request; it returns
// the booking created by the confirmation.
func (h *NotificationHandler) ConfirmWorkHandler(c *gin.Context) {
	var input models.WorkConfirmationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	booked, err := h.Service.ConfirmWork(c.Request.Context(), input)
	if err != nil {
		utils.JSONAppError(c, "failed to confirm work", err)
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// RejectApprovalRequestHandler is the client declining a worker's acceptance.
func (h *NotificationHandler) RejectApprovalRequestHandler(c *gin.Context) {
	var input models.WorkRejectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.RejectApprovalRequest(c.Request.Context(), input); err != nil {
		utils.JSONAppError(c, "failed to reject approval request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": true})
}

// GetNotificationsHandler lists notifications addressed to a receiver, or
// every notification id when no receiver filter is given.
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	receiverID := c.Query("receiverId")
	if receiverID == "" {
		ids, err := h.Service.ListNotificationIDs(c.Request.Context())
		if err != nil {
			utils.JSONAppError(c, "failed to list notifications", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notificationIds": ids})
		return
	}
	notifications, err := h.Service.GetNotifications(c.Request.Context(), receiverID)
	if err != nil {
		utils.JSONAppError(c, "failed to fetch notifications", err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetWorkAlertHandler fetches one work alert by id.
func (h *NotificationHandler) GetWorkAlertHandler(c *gin.Context) {
	alert, err := h.Service.GetWorkAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch work alert", err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// GetApprovalRequestHandler fetches one work approval request by id.
func (h *NotificationHandler) GetApprovalRequestHandler(c *gin.Context) {
	request, err := h.Service.GetWorkApprovalRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to fetch approval request", err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// UpdateWorkAlertHandler applies a partial update to a work alert.
func (h *NotificationHandler) UpdateWorkAlertHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.UpdateWorkAlert(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update work alert", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// UpdateApprovalRequestHandler applies a partial update to an approval request.
func (h *NotificationHandler) UpdateApprovalRequestHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Service.UpdateWorkApprovalRequest(c.Request.Context(), c.Param("id"), fields); err != nil {
		utils.JSONAppError(c, "failed to update approval request", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteNotificationHandler removes any notification by id.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	found, err := h.Service.DeleteNotification(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, "failed to delete notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": found})
}
