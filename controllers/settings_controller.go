package controllers

import (
	"net/http"

	"github.com/pratikonly/Health-Nexus/middlewares"
	"github.com/pratikonly/Health-Nexus/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Svc *services.ProfileService
}

func NewSettingsController(svc *services.ProfileService) *SettingsController {
	return &SettingsController{Svc: svc}
}

func (h *SettingsController) GetProfile(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	view, err := h.Svc.View(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *SettingsController) UpdateSettings(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid numbers for height, weight, and calorie goal."})
		return
	}

	if err := h.Svc.UpdateSettings(c.Request.Context(), userID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully!"})
}
