package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/service"
	logger "skillshare-backend/pkg/logging"
)

type SkillAssessmentController struct {
	skillService  service.SkillAssessmentService
	userService   service.UserService
	reportService service.ReportService
}

func NewSkillAssessmentController(skillService service.SkillAssessmentService, userService service.UserService, reportService service.ReportService) *SkillAssessmentController {
	return &SkillAssessmentController{
		skillService:  skillService,
		userService:   userService,
		reportService: reportService,
	}
}

// GetQuizQuestions handles GET /api/skills/quiz.
func (sc *SkillAssessmentController) GetQuizQuestions(c *gin.Context) {
	questions, err := sc.skillService.GetQuizQuestions()
	if err != nil {
		logger.Error("failed to fetch quiz questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quiz questions"})
		return
	}
	if len(questions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitAssessment handles POST /api/skills/assess?userId=.
// The body is an arbitrary JSON object mapping question ids to scalar
// answers; values are stringified before scoring.
func (sc *SkillAssessmentController) SubmitAssessment(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	exists, err := sc.userService.UserExists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify user"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	answers := make(map[string]string, len(raw))
	for questionID, value := range raw {
		answers[questionID] = fmt.Sprintf("%v", value)
	}

	assessment, err := sc.skillService.ProcessAssessment(answers, userID)
	if err != nil {
		logger.Error("failed to process assessment for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process assessment"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// GetHistory handles GET /api/skills/history/:userId.
func (sc *SkillAssessmentController) GetHistory(c *gin.Context) {
	userID := c.Param("userId")

	history, err := sc.skillService.GetHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if history == nil {
		history = []model.SkillAssessment{}
	}
	c.JSON(http.StatusOK, history)
}

// GetLatest handles GET /api/skills/latest/:userId. A user who never
// completed an assessment gets 404, not an empty record.
func (sc *SkillAssessmentController) GetLatest(c *gin.Context) {
	userID := c.Param("userId")

	assessment, err := sc.skillService.GetLatest(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if assessment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no assessment found"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// SelectFavorite handles POST /api/skills/select-favorite.
func (sc *SkillAssessmentController) SelectFavorite(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Skill  string `json:"skill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Favorite skill selected: " + req.Skill,
		"userId":  req.UserID,
		"skill":   req.Skill,
	})
}

// GetReports handles GET /api/skills/reports/:userId.
func (sc *SkillAssessmentController) GetReports(c *gin.Context) {
	userID := c.Param("userId")

	reports, err := sc.reportService.GetReportsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reports == nil {
		reports = []model.SkillReport{}
	}
	c.JSON(http.StatusOK, reports)
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrPostNotFound)
}
