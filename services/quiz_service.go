package services

import (
	"context"
	"errors"
	"strings"

	"github.com/pratikonly/Health-Nexus/models"

	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuizSummary struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	QuestionCount int      `json:"question_count"`
	LastScore     *int     `json:"last_score,omitempty"`
	LastPct       *float64 `json:"last_percentage,omitempty"`
}

func (s *QuizService) List(ctx context.Context, userID uint) ([]QuizSummary, error) {
	var quizzes []models.Quiz
	if err := s.db.WithContext(ctx).Preload("Questions").Find(&quizzes).Error; err != nil {
		return nil, err
	}

	out := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summary := QuizSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			Category:      q.Category,
			QuestionCount: len(q.Questions),
		}

		var result models.QuizResult
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND quiz_id = ?", userID, q.ID).
			Order("created_at DESC").
			First(&result).Error
		if err == nil {
			summary.LastScore = &result.Score
			summary.LastPct = &result.Percentage
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		out = append(out, summary)
	}
	return out, nil
}

// QuestionView omits the correct answer and explanation so the client
// cannot read them before submitting.
type QuestionView struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

type QuizDetail struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Questions   []QuestionView `json:"questions"`
}

func (s *QuizService) Detail(ctx context.Context, quizID uint) (*QuizDetail, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).Preload("Questions").First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	detail := &QuizDetail{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Category:    quiz.Category,
		Questions:   make([]QuestionView, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		detail.Questions = append(detail.Questions, QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		})
	}
	return detail, nil
}

// Submit grades the answers against the stored correct options
// (case-insensitively) and appends one result row per attempt. An empty
// quiz scores 0 percent rather than dividing by zero.
func (s *QuizService) Submit(ctx context.Context, userID, quizID uint, answers map[uint]string) (*models.QuizResult, error) {
	var quiz models.Quiz
	err := s.db.WithContext(ctx).Preload("Questions").First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	correct := 0
	total := len(quiz.Questions)
	for _, q := range quiz.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(answer), q.CorrectAnswer) {
			correct++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(correct) / float64(total) * 100
	}

	result := &models.QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          correct,
		TotalQuestions: total,
		Percentage:     percentage,
	}
	if err := s.db.WithContext(ctx).Create(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// RecentResults returns the user's latest attempts, newest first.
func (s *QuizService) RecentResults(ctx context.Context, userID uint, limit int) ([]models.QuizResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var results []models.QuizResult
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

func (s *QuizService) CountResults(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.QuizResult{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
