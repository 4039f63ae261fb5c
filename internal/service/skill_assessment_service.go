package service

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gorm.io/datatypes"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
	"skillshare-backend/utilities"
)

//go:embed quiz_questions.json
var quizQuestionsData []byte

// AssessmentCompletedEvent is published on the global event bus with the
// persisted assessment as payload.
const AssessmentCompletedEvent = "assessment_completed"

// ErrCatalogLoad indicates the bundled question definition is missing or
// malformed. The previous catalog keeps serving when this happens.
var ErrCatalogLoad = errors.New("failed to load quiz catalog")

const topSkillCount = 3

type SkillAssessmentService interface {
	// GetQuizQuestions reseeds the catalog from the bundled definition and
	// returns it in randomized order.
	GetQuizQuestions() ([]model.Quiz, error)
	// ProcessAssessment scores a submission against the current catalog and
	// persists the resulting assessment.
	ProcessAssessment(answers map[string]string, userID string) (*model.SkillAssessment, error)
	GetHistory(userID string) ([]model.SkillAssessment, error)
	// GetLatest returns (nil, nil) when the user has never completed an
	// assessment, so callers can distinguish "never attempted" from a zero
	// score.
	GetLatest(userID string) (*model.SkillAssessment, error)
}

type skillAssessmentService struct {
	quizRepo       repository.QuizRepository
	assessmentRepo repository.SkillAssessmentRepository
}

func NewSkillAssessmentService(quizRepo repository.QuizRepository, assessmentRepo repository.SkillAssessmentRepository) SkillAssessmentService {
	return &skillAssessmentService{
		quizRepo:       quizRepo,
		assessmentRepo: assessmentRepo,
	}
}

// questionDefinition mirrors the bundled JSON resource. It is distinct from
// model.Quiz because the model deliberately refuses to serialize the correct
// answer set.
type questionDefinition struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer []string `json:"correctAnswer"`
	Category      string   `json:"category"`
	Points        int      `json:"points"`
}

// loadDefaultQuestions replaces the stored catalog with the bundled
// definition. The swap happens inside one transaction, so repeated calls are
// idempotent and a mid-load failure never leaves a partial catalog.
func (s *skillAssessmentService) loadDefaultQuestions() error {
	var defs []questionDefinition
	if err := json.Unmarshal(quizQuestionsData, &defs); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}

	questions := make([]model.Quiz, 0, len(defs))
	for _, def := range defs {
		if def.ID == "" || def.Points <= 0 || len(def.CorrectAnswer) == 0 {
			return fmt.Errorf("%w: invalid question definition %q", ErrCatalogLoad, def.ID)
		}
		questions = append(questions, model.Quiz{
			ID:            def.ID,
			Question:      def.Question,
			Options:       datatypes.NewJSONSlice(def.Options),
			CorrectAnswer: datatypes.NewJSONSlice(def.CorrectAnswer),
			Category:      def.Category,
			Points:        def.Points,
		})
	}

	if err := s.quizRepo.ReplaceAll(questions); err != nil {
		return fmt.Errorf("failed to store quiz catalog: %w", err)
	}
	return nil
}

func (s *skillAssessmentService) GetQuizQuestions() ([]model.Quiz, error) {
	// Reload questions on every fetch so the catalog always reflects the
	// bundled definition.
	if err := s.loadDefaultQuestions(); err != nil {
		return nil, err
	}

	questions, err := s.quizRepo.GetAllQuestions()
	if err != nil {
		return nil, fmt.Errorf("error fetching quiz questions: %w", err)
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

func (s *skillAssessmentService) ProcessAssessment(answers map[string]string, userID string) (*model.SkillAssessment, error) {
	categoryScores := make(map[string]int)
	correctAnswers := 0
	wrongAnswers := 0
	totalPoints := 0

	for questionID, userAnswer := range answers {
		question, err := s.quizRepo.GetQuestionByID(questionID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up question %s: %w", questionID, err)
		}
		if question == nil {
			// Unknown question ids are ignored by design.
			continue
		}

		if containsAnswer(question.CorrectAnswer, userAnswer) {
			correctAnswers++
			totalPoints += question.Points
			categoryScores[question.Category] += question.Points
		} else {
			wrongAnswers++
		}
	}

	assessment := &model.SkillAssessment{
		UserID:         userID,
		Scores:         datatypes.NewJSONType(categoryScores),
		TopSkills:      datatypes.NewJSONSlice(rankTopSkills(categoryScores)),
		TotalScore:     totalPoints,
		CorrectAnswers: correctAnswers,
		WrongAnswers:   wrongAnswers,
		CompletedAt:    time.Now(),
	}

	if err := s.assessmentRepo.Save(assessment); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	utilities.GlobalEventBus.Publish(AssessmentCompletedEvent, assessment)
	return assessment, nil
}

func (s *skillAssessmentService) GetHistory(userID string) ([]model.SkillAssessment, error) {
	return s.assessmentRepo.FindByUser(userID)
}

func (s *skillAssessmentService) GetLatest(userID string) (*model.SkillAssessment, error) {
	return s.assessmentRepo.FindLatestByUser(userID)
}

// containsAnswer does an exact, case-sensitive membership test against the
// question's correct answer set.
func containsAnswer(correct []string, answer string) bool {
	for _, c := range correct {
		if c == answer {
			return true
		}
	}
	return false
}

// sortCategoriesByScore orders categories by accumulated points descending.
// Ties resolve by category name ascending so the ranking is reproducible
// regardless of map iteration order.
func sortCategoriesByScore(categoryScores map[string]int) []string {
	categories := make([]string, 0, len(categoryScores))
	for category := range categoryScores {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categoryScores[categories[i]] != categoryScores[categories[j]] {
			return categoryScores[categories[i]] > categoryScores[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}

// rankTopSkills returns at most the first three ranked categories.
func rankTopSkills(categoryScores map[string]int) []string {
	categories := sortCategoriesByScore(categoryScores)
	if len(categories) > topSkillCount {
		categories = categories[:topSkillCount]
	}
	return categories
}
