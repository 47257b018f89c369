package config

import (
	"errors"

	"github.com/pratikonly/Health-Nexus/models"

	"gorm.io/gorm"
)

// SeedQuizzes installs the starter quiz catalog. Idempotent by quiz title,
// so restarts never duplicate questions.
func SeedQuizzes(db *gorm.DB) error {
	quizzes := []models.Quiz{
		{
			Title:       "Nutrition Basics",
			Description: "Test your knowledge about essential nutrients and healthy eating habits.",
			Category:    "nutrition",
			Questions: []models.QuizQuestion{
				{
					QuestionText:  "Which vitamin is primarily obtained from sunlight exposure?",
					OptionA:       "Vitamin A",
					OptionB:       "Vitamin B12",
					OptionC:       "Vitamin C",
					OptionD:       "Vitamin D",
					CorrectAnswer: "d",
					Explanation:   "Vitamin D is synthesized in the skin when exposed to sunlight.",
				},
				{
					QuestionText:  "Which macronutrient provides the most calories per gram?",
					OptionA:       "Carbohydrates",
					OptionB:       "Proteins",
					OptionC:       "Fats",
					OptionD:       "Fiber",
					CorrectAnswer: "c",
					Explanation:   "Fats provide 9 calories per gram, while carbs and proteins provide 4 calories per gram.",
				},
				{
					QuestionText:  "What is the recommended daily water intake for an average adult?",
					OptionA:       "4 glasses",
					OptionB:       "6 glasses",
					OptionC:       "8 glasses",
					OptionD:       "12 glasses",
					CorrectAnswer: "c",
					Explanation:   "8 glasses (about 2 liters) of water per day is commonly recommended.",
				},
				{
					QuestionText:  "Which food is the best source of omega-3 fatty acids?",
					OptionA:       "Chicken breast",
					OptionB:       "Salmon",
					OptionC:       "White rice",
					OptionD:       "Potatoes",
					CorrectAnswer: "b",
					Explanation:   "Fatty fish like salmon are excellent sources of omega-3 fatty acids.",
				},
				{
					QuestionText:  "What nutrient helps build and repair muscle tissue?",
					OptionA:       "Carbohydrates",
					OptionB:       "Protein",
					OptionC:       "Sugar",
					OptionD:       "Sodium",
					CorrectAnswer: "b",
					Explanation:   "Protein provides the amino acids needed to build and repair muscle.",
				},
			},
		},
		{
			Title:       "Fitness Fundamentals",
			Description: "How well do you know the basics of exercise and recovery?",
			Category:    "fitness",
			Questions: []models.QuizQuestion{
				{
					QuestionText:  "How many minutes of moderate aerobic activity per week are recommended for adults?",
					OptionA:       "60 minutes",
					OptionB:       "100 minutes",
					OptionC:       "150 minutes",
					OptionD:       "300 minutes",
					CorrectAnswer: "c",
					Explanation:   "Guidelines recommend at least 150 minutes of moderate aerobic activity weekly.",
				},
				{
					QuestionText:  "Which of these is a compound exercise?",
					OptionA:       "Bicep curl",
					OptionB:       "Squat",
					OptionC:       "Calf raise",
					OptionD:       "Wrist curl",
					CorrectAnswer: "b",
					Explanation:   "Squats work multiple muscle groups and joints at once.",
				},
				{
					QuestionText:  "What is the main benefit of stretching after a workout?",
					OptionA:       "Burning extra calories",
					OptionB:       "Building muscle mass",
					OptionC:       "Improving flexibility and recovery",
					OptionD:       "Increasing heart rate",
					CorrectAnswer: "c",
					Explanation:   "Post-workout stretching supports flexibility and helps recovery.",
				},
			},
		},
		{
			Title:       "Wellness and Sleep",
			Description: "Check your understanding of rest, stress and overall wellness.",
			Category:    "wellness",
			Questions: []models.QuizQuestion{
				{
					QuestionText:  "How many hours of sleep are recommended for most adults?",
					OptionA:       "4-5 hours",
					OptionB:       "5-6 hours",
					OptionC:       "7-9 hours",
					OptionD:       "10-12 hours",
					CorrectAnswer: "c",
					Explanation:   "Most adults need 7 to 9 hours of sleep per night.",
				},
				{
					QuestionText:  "Which habit is most helpful for managing everyday stress?",
					OptionA:       "Skipping meals",
					OptionB:       "Regular physical activity",
					OptionC:       "Late-night screen time",
					OptionD:       "Extra caffeine",
					CorrectAnswer: "b",
					Explanation:   "Regular exercise is one of the most effective stress relievers.",
				},
			},
		},
	}

	for _, quiz := range quizzes {
		var existing models.Quiz
		err := db.Where("title = ?", quiz.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&quiz).Error; err != nil {
			return err
		}
	}
	return nil
}
