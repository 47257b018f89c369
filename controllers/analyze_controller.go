package controllers

import (
	"errors"
	"net/http"

	"github.com/pratikonly/Health-Nexus/middlewares"
	"github.com/pratikonly/Health-Nexus/services"

	"github.com/gin-gonic/gin"
)

type AnalyzeController struct {
	Analyze *services.AnalyzeService
}

func NewAnalyzeController(analyze *services.AnalyzeService) *AnalyzeController {
	return &AnalyzeController{Analyze: analyze}
}

// AnalyzeFood accepts a food name and/or a base64 photo, resolves
// nutrition data and optionally logs the meal in the same call.
func (h *AnalyzeController) AnalyzeFood(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
		return
	}

	var req services.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	result, err := h.Analyze.Analyze(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoInput):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please upload an image or enter the food name."})
		case errors.Is(err, services.ErrManualInputNeeded):
			c.JSON(http.StatusOK, gin.H{
				"success":      false,
				"error":        "Could not detect food from the image. Please enter the food name manually.",
				"manual_input": true,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
