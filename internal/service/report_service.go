package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
	logger "skillshare-backend/pkg/logging"
	"skillshare-backend/utilities"
)

type ReportService interface {
	GenerateReport(assessment *model.SkillAssessment) error
	GetReportsByUser(userID string) ([]model.SkillReport, error)
}

type reportService struct {
	reportRepo repository.SkillReportRepository
	reportDir  string
}

func NewReportService(reportRepo repository.SkillReportRepository, reportDir string) ReportService {
	if reportDir == "" {
		reportDir = "working/reports"
	}
	return &reportService{
		reportRepo: reportRepo,
		reportDir:  reportDir,
	}
}

// InitReportEventListeners generates a PDF report whenever an assessment
// completes. Handlers run off the request goroutine, so a failed render
// never affects the API response.
func InitReportEventListeners(reportRepo repository.SkillReportRepository, reportDir string) {
	svc := NewReportService(reportRepo, reportDir)
	utilities.GlobalEventBus.Subscribe(AssessmentCompletedEvent, func(data interface{}) {
		assessment, ok := data.(*model.SkillAssessment)
		if !ok {
			logger.Warn("invalid payload on %s event", AssessmentCompletedEvent)
			return
		}
		if err := svc.GenerateReport(assessment); err != nil {
			logger.Error("failed to generate report for assessment %s: %v", assessment.ID, err)
		}
	})
}

func (s *reportService) GenerateReport(assessment *model.SkillAssessment) error {
	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Skill Assessment Report")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", assessment.UserID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %s", assessment.CompletedAt.Format(time.RFC1123)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total score: %d   Correct: %d   Wrong: %d",
		assessment.TotalScore, assessment.CorrectAnswers, assessment.WrongAnswers))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Scores by category")
	pdf.Ln(10)

	scores := assessment.Scores.Data()
	pdf.SetFont("Arial", "", 11)
	if len(scores) == 0 {
		pdf.Cell(0, 8, "No correct answers recorded.")
		pdf.Ln(8)
	}
	for _, category := range sortCategoriesByScore(scores) {
		pdf.CellFormat(90, 8, category, "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d pts", scores[category]), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, "Top skills")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	for i, skill := range assessment.TopSkills {
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s", i+1, skill))
		pdf.Ln(8)
	}

	fileName := fmt.Sprintf("report_%s.pdf", assessment.ID)
	outputPath := filepath.Join(s.reportDir, fileName)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF: %w", err)
	}

	report := model.SkillReport{
		UserID:       assessment.UserID,
		AssessmentID: assessment.ID,
		FileName:     fileName,
		DownloadURL:  "/api/skills/reports/download/" + fileName,
		GeneratedAt:  time.Now(),
	}
	if err := s.reportRepo.SaveReport(&report); err != nil {
		return fmt.Errorf("failed to save report record: %w", err)
	}

	logger.Info("Generated skill report %s for user %s", fileName, assessment.UserID)
	return nil
}

func (s *reportService) GetReportsByUser(userID string) ([]model.SkillReport, error) {
	return s.reportRepo.GetReportsByUser(userID)
}

// GenerateMissingReports backfills reports for assessments persisted before
// report generation existed or whose render failed.
func GenerateMissingReports(assessmentRepo repository.SkillAssessmentRepository, reportRepo repository.SkillReportRepository, reportDir string) {
	assessments, err := assessmentRepo.FindWithoutReport()
	if err != nil {
		logger.Error("failed to fetch assessments without reports: %v", err)
		return
	}
	if len(assessments) == 0 {
		return
	}

	svc := NewReportService(reportRepo, reportDir)
	for i := range assessments {
		if err := svc.GenerateReport(&assessments[i]); err != nil {
			logger.Error("failed to backfill report for assessment %s: %v", assessments[i].ID, err)
		}
	}
}
