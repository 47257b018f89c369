package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pratikonly/Health-Nexus/middlewares"
	"github.com/pratikonly/Health-Nexus/services"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Svc *services.QuizService
}

func NewQuizController(svc *services.QuizService) *QuizController {
	return &QuizController{Svc: svc}
}

func (h *QuizController) ListQuizzes(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	quizzes, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizController) QuizDetail(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}

	detail, err := h.Svc.Detail(c.Request.Context(), uint(quizID))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

type submitQuizInput struct {
	Answers map[uint]string `json:"answers" binding:"required"` // question id -> option letter
}

func (h *QuizController) SubmitQuiz(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}

	var input submitQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), userID, uint(quizID), input.Answers)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Quiz completed! You scored %d/%d (%.1f%%)",
			result.Score, result.TotalQuestions, result.Percentage),
		"result": result,
	})
}
