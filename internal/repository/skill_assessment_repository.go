package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-backend/internal/db"
	"skillshare-backend/internal/model"
)

type SkillAssessmentRepository interface {
	// Save persists a new assessment, assigning an id when none is set.
	Save(assessment *model.SkillAssessment) error
	FindByUser(userID string) ([]model.SkillAssessment, error)
	// FindLatestByUser returns (nil, nil) when the user has no assessments.
	FindLatestByUser(userID string) (*model.SkillAssessment, error)
	FindWithoutReport() ([]model.SkillAssessment, error)
	GetByID(id string) (*model.SkillAssessment, error)
}

type skillAssessmentRepository struct{}

func NewSkillAssessmentRepository() SkillAssessmentRepository {
	return &skillAssessmentRepository{}
}

func (r *skillAssessmentRepository) Save(assessment *model.SkillAssessment) error {
	if assessment.ID == "" {
		assessment.ID = uuid.NewString()
	}
	return db.GetDB().Create(assessment).Error
}

func (r *skillAssessmentRepository) FindByUser(userID string) ([]model.SkillAssessment, error) {
	var assessments []model.SkillAssessment
	err := db.GetDB().
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *skillAssessmentRepository) FindLatestByUser(userID string) (*model.SkillAssessment, error) {
	var assessment model.SkillAssessment
	err := db.GetDB().
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *skillAssessmentRepository) FindWithoutReport() ([]model.SkillAssessment, error) {
	var assessments []model.SkillAssessment
	err := db.GetDB().
		Where("id NOT IN (?)", db.GetDB().Model(&model.SkillReport{}).Select("assessment_id")).
		Find(&assessments).Error
	return assessments, err
}

func (r *skillAssessmentRepository) GetByID(id string) (*model.SkillAssessment, error) {
	var assessment model.SkillAssessment
	err := db.GetDB().Where("id = ?", id).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
