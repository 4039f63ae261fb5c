package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillshare-backend/internal/db"
	"skillshare-backend/internal/model"
)

type QuizRepository interface {
	// ReplaceAll swaps the stored catalog for the given question set in a
	// single transaction, so a failed reload never leaves a half-populated
	// catalog behind.
	ReplaceAll(questions []model.Quiz) error
	GetAllQuestions() ([]model.Quiz, error)
	GetQuestionByID(id string) (*model.Quiz, error)
}

type quizRepository struct{}

func NewQuizRepository() QuizRepository {
	return &quizRepository{}
}

func (r *quizRepository) ReplaceAll(questions []model.Quiz) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *quizRepository) GetAllQuestions() ([]model.Quiz, error) {
	var questions []model.Quiz
	err := db.GetDB().Find(&questions).Error
	return questions, err
}

func (r *quizRepository) GetQuestionByID(id string) (*model.Quiz, error) {
	var question model.Quiz
	err := db.GetDB().Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}
