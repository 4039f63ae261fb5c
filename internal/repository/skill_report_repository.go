package repository

import (
	"github.com/google/uuid"

	"skillshare-backend/internal/db"
	"skillshare-backend/internal/model"
)

type SkillReportRepository interface {
	SaveReport(report *model.SkillReport) error
	GetReportsByUser(userID string) ([]model.SkillReport, error)
}

type skillReportRepository struct{}

func NewSkillReportRepository() SkillReportRepository {
	return &skillReportRepository{}
}

func (r *skillReportRepository) SaveReport(report *model.SkillReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	return db.GetDB().Create(report).Error
}

func (r *skillReportRepository) GetReportsByUser(userID string) ([]model.SkillReport, error) {
	var reports []model.SkillReport
	err := db.GetDB().
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reports).Error
	return reports, err
}
